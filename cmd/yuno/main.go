package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yuno/internal/bot"
	"yuno/internal/config"
	"yuno/internal/leveling"
	"yuno/internal/modlog"
	"yuno/internal/storage"

	"go.uber.org/zap"
)

func main() {
	path := config.ResolvePath(os.Args[1:])
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}

	logger, err := config.BuildLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("config loaded", zap.String("path", path))

	store, err := storage.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	levelEngine := leveling.NewEngine(store)
	recorder := modlog.NewRecorder(store, logger)

	botSvc, err := bot.New(cfg, logger, store, levelEngine, recorder)
	if err != nil {
		logger.Fatal("bot init failed", zap.Error(err))
	}

	if err := botSvc.Start(); err != nil {
		logger.Fatal("bot start failed", zap.Error(err))
	}
	logger.Info("bot started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutdown requested")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	botSvc.Close(ctx)
}
