package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/larriantoniy/tg_invest_bot/internal/adapters/adminstore"
	"github.com/larriantoniy/tg_invest_bot/internal/adapters/sheets"
	"github.com/larriantoniy/tg_invest_bot/internal/adapters/tg"
	"github.com/larriantoniy/tg_invest_bot/internal/config"
	"github.com/larriantoniy/tg_invest_bot/internal/ports"
	"github.com/larriantoniy/tg_invest_bot/internal/useCases"
)

const (
	envDev  = "dev"
	envProd = "prod"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := setupLogger(cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	records, err := sheets.NewRecordStore(ctx, cfg.GoogleKeyFile, cfg.SpreadsheetID, cfg.SheetName, logger)
	if err != nil {
		logger.Error("sheets record store init", "error", err)
		os.Exit(1)
	}
	if err := records.EnsureHeaders(ctx); err != nil {
		logger.Error("ensure sheet headers", "error", err)
		os.Exit(1)
	}

	// засеиваем аллокатор уже выданными ID, чтобы после рестарта
	// не выдать живой идентификатор повторно
	issued, err := records.ListApplicationIDs(ctx)
	if err != nil {
		logger.Error("load issued application ids", "error", err)
		os.Exit(1)
	}
	alloc := useCases.NewAllocator(issued)
	logger.Info("allocator seeded", "issued_ids", len(issued))

	var adminRepo ports.AdminRepo
	if cfg.RedisURL != "" {
		repo, err := adminstore.NewRedisAdminRepo(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("redis admin repo init", "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		adminRepo = repo
	} else {
		adminRepo = adminstore.NewJSONAdminRepo(cfg.AdminsFile)
	}

	registry, err := useCases.NewAdminRegistry(ctx, adminRepo, cfg.BootstrapAdminID)
	if err != nil {
		logger.Error("admin registry init", "error", err)
		os.Exit(1)
	}

	tgClient, err := tg.NewBotClient(cfg.ApiID, cfg.ApiHash, cfg.BotToken, cfg.BaseDir, logger)
	if err != nil {
		logger.Error("telegram client init", "error", err)
		os.Exit(1)
	}
	defer tgClient.Close()

	sessions := useCases.NewSessionStore()
	admins := useCases.NewAdminFlow(logger, tgClient, registry, sessions)
	engine := useCases.NewEngine(
		logger, tgClient, records, sessions, alloc, registry, admins,
		cfg.PitchDeckURL, cfg.PitchDeckURLRu,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	msgs, err := tgClient.Listen()
	if err != nil {
		logger.Error("telegram listen", "error", err)
		os.Exit(1)
	}

	logger.Info("bot started")
	engine.Run(ctx, msgs)
	logger.Info("exit")
}

func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		fallthrough
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return logger
}
