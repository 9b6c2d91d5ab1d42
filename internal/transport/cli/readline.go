package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/pdfchat/internal/config"
	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/internal/service/agent"
	"github.com/sandevgo/pdfchat/internal/service/ui"
	"github.com/sandevgo/pdfchat/pkg/conv"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// ReadLine is the interactive terminal chat. One process serves one session;
// the session ID is fixed at construction.
type ReadLine struct {
	cfg       *config.AppConfig
	agent     *agent.Agent
	router    core.CmdRouter
	sessionID string
	rl        *readline.Instance
}

func NewReadLine(agent *agent.Agent, router core.CmdRouter, cfg *config.AppConfig, sessionID string) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:       cfg,
		agent:     agent,
		router:    router,
		sessionID: sessionID,
		rl:        rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("session", r.sessionID).Msg("interactive chat started")

	fmt.Fprintln(r.rl.Stdout(), ui.DescStyle.Render("Ask questions about the ingested document. Type 'help' for commands, 'quit' to exit."))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isQuit(line) {
			return nil
		}

		if out, handled := r.router.Execute(ctx, r.sessionID, line); handled {
			fmt.Fprintln(r.rl.Stdout(), conv.MarkdownToText([]byte(out)))
			continue
		}

		answer := r.agent.Run(ctx, r.sessionID, line)
		fmt.Fprintln(r.rl.Stdout(), ui.AnswerStyle.Render(conv.MarkdownToText([]byte(answer))))
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		return true
	}
	return false
}
