package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/pdfchat/internal/core"
)

type fakeCommand struct {
	name string
	exec func(ctx context.Context, sessionID string, args []string) (string, error)
}

func (c *fakeCommand) Name() string        { return c.name }
func (c *fakeCommand) Description() string { return "fake" }

func (c *fakeCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	return c.exec(ctx, sessionID, args)
}

func TestRouterDispatch(t *testing.T) {
	var gotSession string
	var gotArgs []string
	router := New([]core.Command{&fakeCommand{
		name: "status",
		exec: func(ctx context.Context, sessionID string, args []string) (string, error) {
			gotSession = sessionID
			gotArgs = args
			return "ok", nil
		},
	}})

	out, handled := router.Execute(context.Background(), "s1", "status verbose")

	require.True(t, handled)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "s1", gotSession)
	assert.Equal(t, []string{"verbose"}, gotArgs)
}

func TestRouterPassesQuestionsThrough(t *testing.T) {
	router := New([]core.Command{&fakeCommand{
		name: "clear",
		exec: func(ctx context.Context, sessionID string, args []string) (string, error) {
			t.Fatal("must not run")
			return "", nil
		},
	}})

	for _, input := range []string{"what is on page 3?", "", "   ", "clearly not a command"} {
		_, handled := router.Execute(context.Background(), "s1", input)
		assert.False(t, handled, "input %q must flow to the agent", input)
	}
}

func TestRouterIsCaseInsensitive(t *testing.T) {
	router := New([]core.Command{&fakeCommand{
		name: "help",
		exec: func(ctx context.Context, sessionID string, args []string) (string, error) {
			return "commands", nil
		},
	}})

	out, handled := router.Execute(context.Background(), "s1", "HELP")
	require.True(t, handled)
	assert.Equal(t, "commands", out)
}

func TestRouterFormatsCommandError(t *testing.T) {
	router := New([]core.Command{&fakeCommand{
		name: "clear",
		exec: func(ctx context.Context, sessionID string, args []string) (string, error) {
			return "", errors.New("store down")
		},
	}})

	out, handled := router.Execute(context.Background(), "s1", "clear")
	require.True(t, handled)
	assert.Equal(t, "Error: store down", out)
}
