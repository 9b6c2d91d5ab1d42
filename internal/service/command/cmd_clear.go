package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/pdfchat/internal/service/memory"
)

type ClearCommand struct {
	memory    *memory.Memory
	formatter *ResponseFormatter
}

func NewClearCommand(mem *memory.Memory) *ClearCommand {
	return &ClearCommand{
		memory:    mem,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Forget this session's history"
}

func (c *ClearCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if !c.memory.Enabled() {
		return c.formatter.Info("Memory is disabled") +
			c.formatter.Tip("Start the chat with --memory to keep session history."), nil
	}

	n, err := c.memory.Clear(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to clear history: %w", err)
	}
	return c.formatter.Success(fmt.Sprintf("Cleared %d messages", n)), nil
}
