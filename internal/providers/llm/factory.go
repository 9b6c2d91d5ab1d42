package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/pdfchat/internal/config"
	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// NewProvider builds the Gemini provider, resolving the API key from the
// serverless credential endpoint first and the environment second. Missing
// credentials are fatal to the caller: orchestration must not begin without
// a working generation backend.
func NewProvider(ctx context.Context, cfg *config.GeminiConfig, creds core.CredentialSource) (*Gemini, error) {
	logger := log.FromCtx(ctx)

	apiKey := ""
	if creds != nil {
		key, err := creds.APIKey(ctx, "google")
		if err != nil {
			logger.Debug().Err(err).Msg("serverless api key lookup failed")
		} else {
			apiKey = key
		}
	}
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no Gemini API key available: set GOOGLE_API_KEY or configure SERVERLESS_URL")
	}

	logger.Info().Str("model", cfg.Model).Msg("starting gemini provider")
	return NewGemini(ctx, apiKey, cfg.Model)
}
