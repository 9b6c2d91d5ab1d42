package command

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type HelpCommand struct {
	router    *Router
	formatter *ResponseFormatter
}

func NewHelpCommand(router *Router) *HelpCommand {
	return &HelpCommand{
		router:    router,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	commands := c.router.ListCommands()
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	items := make([]string, 0, len(commands)+1)
	for _, cmd := range commands {
		items = append(items, fmt.Sprintf("`%s`  %s", cmd.Name(), cmd.Description()))
	}
	items = append(items, "`quit`  Exit the chat")

	var sb strings.Builder
	sb.WriteString(c.formatter.Info("Commands"))
	sb.WriteString(c.formatter.List(items))
	sb.WriteString("\n")
	sb.WriteString(c.formatter.Tip("Anything else is sent to the agent as a question."))
	return sb.String(), nil
}
