package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/internal/service/memory"
)

type StatusCommand struct {
	memory    *memory.Memory
	pages     core.PagesRepository
	store     string
	react     bool
	formatter *ResponseFormatter
}

func NewStatusCommand(mem *memory.Memory, pages core.PagesRepository, store string, react bool) *StatusCommand {
	return &StatusCommand{
		memory:    mem,
		pages:     pages,
		store:     store,
		react:     react,
		formatter: NewResponseFormatter(),
	}
}

func (c *StatusCommand) Name() string {
	return "status"
}

func (c *StatusCommand) Description() string {
	return "Show session and store status"
}

func (c *StatusCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	strategy := "direct"
	if c.react {
		strategy = "react"
	}

	memState := "off"
	if c.memory.Enabled() {
		memState = fmt.Sprintf("on, %d tokens", c.memory.TokenCount(ctx, sessionID))
	}

	pagesState := "unavailable"
	if n, err := c.pages.Count(ctx); err == nil {
		pagesState = fmt.Sprintf("%d pages", n)
	}

	return c.formatter.Combine(
		c.formatter.Info("Session Status"),
		c.formatter.Label("Session", sessionID)+
			c.formatter.Label("Strategy", strategy)+
			c.formatter.Label("Memory", memState)+
			c.formatter.Label("Store", c.store)+
			c.formatter.Label("Ingested", pagesState),
	), nil
}
