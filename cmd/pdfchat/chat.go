package main

import (
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sandevgo/pdfchat/internal/config"
	"github.com/sandevgo/pdfchat/internal/transport/cli"
	"github.com/sandevgo/pdfchat/internal/transport/telegram"
	"github.com/sandevgo/pdfchat/pkg/log"
	"github.com/sandevgo/pdfchat/pkg/srv"
)

var (
	flagMemory  bool
	flagReact   bool
	flagSession string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the ingested document",
	Long:  `Starts the configured chat transports (terminal and/or Telegram) against the ingested document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		a := newApp(ctx)

		useMemory := flagMemory || a.cfg.UseMemory
		useReact := flagReact || a.cfg.UseReAct

		sessionID := flagSession
		if sessionID == "" {
			sessionID = "cli-" + uuid.NewString()
		}
		if useMemory {
			logger.Info().Str("session", sessionID).Msg("session memory enabled, reuse this ID with --session to continue later")
		}

		ag, mem := a.newAgent(ctx, useMemory, useReact)
		router := a.newRouter(mem, useReact)

		services := a.cleanups
		if a.cfg.IsTelegramSelected() {
			bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), ag, router)
			if err != nil {
				return err
			}
			services = append(services, bot)
		}

		srv.StartServices(ctx, services)

		if a.cfg.EnableCLI {
			rl, err := cli.NewReadLine(ag, router, a.cfg, sessionID)
			if err != nil {
				return err
			}
			if err := rl.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msg("chat loop failed")
			}
			_ = rl.Shutdown(ctx)
			stop()
		}

		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("pdfchat has been shut down gracefully")
		return nil
	},
}

func init() {
	chatCmd.Flags().BoolVar(&flagMemory, "memory", false, "keep session history in the document store")
	chatCmd.Flags().BoolVar(&flagReact, "react", false, "use the iterative ReAct answer strategy")
	chatCmd.Flags().StringVar(&flagSession, "session", "", "session ID to continue (default: a fresh random ID)")
	rootCmd.AddCommand(chatCmd)
}
