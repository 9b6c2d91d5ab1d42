package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/pdfchat/internal/core"
)

// Router dispatches bare-word shell commands. Input whose first word is not
// a registered command is not handled and flows on to the agent as a
// question.
type Router struct {
	commands map[string]core.Command
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands: make(map[string]core.Command),
	}

	for _, cmd := range commands {
		c.commands[cmd.Name()] = cmd
	}
	return c
}

func (c *Router) Execute(ctx context.Context, sessionID, input string) (string, bool) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", false
	}

	cmd, ok := c.commands[strings.ToLower(parts[0])]
	if !ok {
		return "", false
	}

	result, err := cmd.Execute(ctx, sessionID, parts[1:])
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return result, true
}

func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	return res
}
