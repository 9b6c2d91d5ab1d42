package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sandevgo/pdfchat/internal/config"
	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/internal/providers/embedding"
	"github.com/sandevgo/pdfchat/internal/providers/llm"
	"github.com/sandevgo/pdfchat/internal/service/agent"
	"github.com/sandevgo/pdfchat/internal/service/command"
	"github.com/sandevgo/pdfchat/internal/service/memory"
	"github.com/sandevgo/pdfchat/internal/storage/mongo"
	"github.com/sandevgo/pdfchat/pkg/log"
	"github.com/sandevgo/pdfchat/pkg/srv"
)

// app holds everything the subcommands share: configuration, the Atlas
// connection, repositories and the serverless client. Construction is fatal
// on misconfiguration; commands should not start half-wired.
type app struct {
	cfg        *config.AppConfig
	atlas      *config.AtlasConfig
	client     *driver.Client
	pages      *mongo.PagesRepo
	history    *mongo.HistoryRepo
	serverless *embedding.Serverless

	cleanups []srv.Service
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	appCfg := config.NewAppConfig(ctx)
	atlasCfg := config.NewAtlasConfig(ctx)
	serverlessCfg := config.NewServerlessConfig(ctx)

	client, err := mongo.Connect(ctx, atlasCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to document store")
	}

	db := client.Database(atlasCfg.Database)

	a := &app{
		cfg:        appCfg,
		atlas:      atlasCfg,
		client:     client,
		pages:      mongo.NewPagesRepo(db.Collection(atlasCfg.PagesCollection), atlasCfg.SearchIndex),
		history:    mongo.NewHistoryRepo(db.Collection(atlasCfg.HistoryCollection)),
		serverless: embedding.NewServerless(serverlessCfg.URL),
	}
	a.cleanups = append(a.cleanups, srv.NewCleanup(mongo.Disconnector(client)))
	return a
}

// generator builds the Gemini provider, fatal when no key can be resolved.
func (a *app) generator(ctx context.Context) core.Generator {
	var creds core.CredentialSource
	if a.serverless.Configured() {
		creds = a.serverless
	}

	gen, err := llm.NewProvider(ctx, config.NewGeminiConfig(ctx), creds)
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to initialize LLM provider")
	}
	a.cleanups = append(a.cleanups, srv.NewCleanup(gen.Close))
	return gen
}

func (a *app) retriever() *agent.Retriever {
	return agent.NewRetriever(a.serverless, a.pages)
}

func (a *app) newAgent(ctx context.Context, useMemory, useReact bool) (*agent.Agent, *memory.Memory) {
	mem := memory.New(useMemory, a.history)
	return agent.New(a.generator(ctx), a.retriever(), mem, useReact), mem
}

func (a *app) newRouter(mem *memory.Memory, react bool) *command.Router {
	store := fmt.Sprintf("%s.%s", a.atlas.Database, a.atlas.PagesCollection)
	return command.NewRouter(mem, a.pages, store, react)
}

// storePing adapts the driver ping for the verify probes.
func (a *app) storePing() func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return a.client.Ping(ctx, readpref.Primary())
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
