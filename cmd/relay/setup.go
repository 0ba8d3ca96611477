package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/relaybot/internal/config"
	"github.com/sandevgo/relaybot/internal/core"
	"github.com/sandevgo/relaybot/internal/providers/llm"
	"github.com/sandevgo/relaybot/internal/providers/tokenizer"
	"github.com/sandevgo/relaybot/internal/service/command"
	"github.com/sandevgo/relaybot/internal/service/intent"
	"github.com/sandevgo/relaybot/internal/service/responder"
	"github.com/sandevgo/relaybot/internal/service/session"
	"github.com/sandevgo/relaybot/internal/storage/sqlite"
	"github.com/sandevgo/relaybot/internal/transport/cli"
	"github.com/sandevgo/relaybot/internal/transport/telegram"
	"github.com/sandevgo/relaybot/pkg/log"
	"github.com/sandevgo/relaybot/pkg/srv"
)

// App holds everything the transports share.
type App struct {
	cfg       *config.AppConfig
	store     *session.Store
	responder *responder.Responder
	router    *command.Router
	cleanup   []srv.Service
}

func NewApp(ctx context.Context) *App {
	logger := log.FromCtx(ctx)

	if err := loadEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	cfg := config.NewAppConfig(ctx)
	app := &App{cfg: cfg}

	// 2. Generation backend, optional
	ai, err := llm.NewProvider(ctx, cfg)
	if errors.Is(err, core.ErrNoCredential) {
		logger.Warn().Str("provider", cfg.Provider).Msg("no API key configured, replies will be rule-based")
	} else if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 3. Rules
	rulebook, err := responder.LoadRulebook(cfg.GetRepliesPath())
	if err != nil {
		logger.Warn().Err(err).Msg("using built-in replies")
	}

	// 4. Sessions
	app.store = session.NewStore(cfg.HistoryLimit)

	// 5. Transcript, optional
	var transcript core.TranscriptRepository
	opts := []responder.Option{responder.WithTokenCounter(tokenizer.New(ctx))}
	if cfg.TranscriptEnabled {
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open transcript database")
		}
		app.cleanup = append(app.cleanup, srv.NewCleanup(db.Close))

		repo := sqlite.NewTranscriptRepo(db)
		transcript = repo
		opts = append(opts, responder.WithTranscript(repo))
	}

	// 6. Responder
	analyzer := intent.NewAnalyzer(intent.NewClassifier(rulebook.Keywords), ai, cfg.IntentAnalysis, cfg.AnalysisTimeout)
	app.responder = responder.NewResponder(
		responder.NewConfig(cfg),
		app.store,
		analyzer,
		ai,
		responder.NewSysPrompt(cfg.GetSystemPromptPath()),
		rulebook.Replies,
		opts...,
	)

	// 7. Commands
	app.router = command.New(command.NewCommands(app.store, app.responder, transcript))

	return app
}

// Transports builds the enabled chat transports. Leaving the console chat calls stop.
func (a *App) Transports(ctx context.Context, stop context.CancelFunc) ([]srv.Service, error) {
	var services []srv.Service

	if a.cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, a.responder, a.router, a.store)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if a.cfg.EnableCLI {
		console, err := cli.NewReadLine(a.cfg.GetRuntimePath(), a.responder, a.router, a.store)
		if err != nil {
			return nil, err
		}
		services = append(services, srv.NewFunc(func(ctx context.Context) error {
			defer stop()
			return console.Start(ctx)
		}, console.Shutdown))
	}

	if len(services) == 0 {
		return nil, errors.New("no transport enabled, set ENABLE_TELEGRAM or ENABLE_CLI")
	}
	return services, nil
}

func loadEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := config.AppConfig{RuntimePath: runtimePath}.GetEnvPath()

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
