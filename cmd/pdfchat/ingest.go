package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/pdfchat/internal/service/ingest"
	"github.com/sandevgo/pdfchat/pkg/log"
	"github.com/sandevgo/pdfchat/pkg/srv"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <pdf-path-or-url>",
	Short: "Ingest a PDF into the vector store",
	Long:  `Renders each page of the PDF to a PNG, embeds it and stores the page documents in the vector search collection.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		a := newApp(ctx)
		defer func() { srv.CloseServices(ctx, a.cleanups) }()

		if !a.serverless.Configured() {
			logger.Fatal().Msg("ingest requires SERVERLESS_URL for document embeddings")
		}

		svc := ingest.New(a.serverless, a.pages, a.cfg.GetPagesPath())
		n, err := svc.Run(ctx, args[0])
		if err != nil {
			return err
		}

		logger.Info().Int("pages", n).Str("dir", a.cfg.GetPagesPath()).Msg("document ingested")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
