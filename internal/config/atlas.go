package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/pdfchat/pkg/log"
)

type AtlasConfig struct {
	URI               string `env:"MONGODB_URI,required,notEmpty"`
	Database          string `env:"PDFCHAT_DB_NAME" envDefault:"mongodb_aiewf"`
	PagesCollection   string `env:"PDFCHAT_COLLECTION" envDefault:"multimodal_workshop_voyageai"`
	HistoryCollection string `env:"PDFCHAT_HISTORY_COLLECTION" envDefault:"history_chat"`
	SearchIndex       string `env:"PDFCHAT_VS_INDEX" envDefault:"vector_index_voyageai"`
}

func NewAtlasConfig(ctx context.Context) *AtlasConfig {
	c := &AtlasConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Atlas config")
	}
	return c
}
