package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// ServerlessConfig points at the workshop's embedding/credential endpoint.
// The URL is optional: without it retrieval degrades to "no context" and the
// Gemini key must come from the environment.
type ServerlessConfig struct {
	URL string `env:"SERVERLESS_URL"`
}

func NewServerlessConfig(ctx context.Context) *ServerlessConfig {
	c := &ServerlessConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Serverless config")
	}
	return c
}
