package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/pdfchat/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"PDFCHAT_RUNTIME_PATH" envDefault:".pdfchat"`

	// Transport flags
	EnableTelegram bool `env:"PDFCHAT_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"PDFCHAT_ENABLE_CLI" envDefault:"true"`

	// Orchestration defaults, overridable by chat flags
	UseMemory bool `env:"PDFCHAT_USE_MEMORY" envDefault:"false"`
	UseReAct  bool `env:"PDFCHAT_USE_REACT" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

// GetPagesPath is where ingested page images are written and read back from.
func (c AppConfig) GetPagesPath() string {
	return filepath.Join(c.RuntimePath, "pages")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
