package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/pdfchat/internal/config"
	"github.com/sandevgo/pdfchat/internal/transport/mcpserver"
	"github.com/sandevgo/pdfchat/pkg/log"
	"github.com/sandevgo/pdfchat/pkg/srv"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the retrieval tool over MCP stdio",
	Long:  `Exposes the document retrieval tool to MCP clients over stdio, so other agents can search the ingested document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// stdout carries the MCP protocol, keep logs on stderr.
		var flushLog func()
		ctx, flushLog = log.NewContextWithLoggerTo(ctx, debug || config.IsDebug(), os.Stderr)
		defer flushLog()

		a := newApp(ctx)
		defer func() { srv.CloseServices(ctx, a.cleanups) }()

		return mcpserver.New(a.retriever()).Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
