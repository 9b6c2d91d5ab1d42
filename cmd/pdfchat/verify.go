package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/pdfchat/internal/service/ui"
	"github.com/sandevgo/pdfchat/internal/service/verify"
	"github.com/sandevgo/pdfchat/pkg/srv"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check connectivity to the store, embedder and LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		a := newApp(ctx)
		defer func() { srv.CloseServices(ctx, a.cleanups) }()

		svc := verify.New(a.storePing(), a.pages, a.serverless, a.generator(ctx))
		results := svc.Run(ctx)

		failed := 0
		for _, r := range results {
			if r.OK() {
				fmt.Printf("%s %s: %s\n", ui.UsageStyle.Render("✓"), r.Name, r.Detail)
			} else {
				failed++
				fmt.Printf("%s %s: %v\n", ui.FlagStyle.Render("✗"), r.Name, r.Err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d checks failed", failed, len(results))
		}
		fmt.Println(ui.TitleStyle.Render("All checks passed."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
