package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pesagem/infrastructure/audit"
	"pesagem/infrastructure/cache"
	"pesagem/infrastructure/config"
	httpserver "pesagem/infrastructure/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	drafts := cache.NewDraftCache()
	exports := cache.NewExportCache(cfg.ExportTTL)

	auditSvc := audit.NewService(slog.Default())

	server := httpserver.NewServer(cfg, drafts, exports, auditSvc)
	if err := server.Start(); err != nil {
		slog.Error("start server", slog.String("addr", cfg.Addr), slog.Any("err", err))
		os.Exit(1)
	}
	slog.Info("pesagem listening", slog.String("addr", cfg.Addr), slog.String("save_dir", cfg.SaveDir))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		slog.Error("graceful shutdown", slog.Any("err", err))
	}
}
