package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/KEswar-045/station-status-service/internal/audit"
	"github.com/KEswar-045/station-status-service/internal/config"
	"github.com/KEswar-045/station-status-service/internal/httpserver"
	"github.com/KEswar-045/station-status-service/internal/ingest"
	"github.com/KEswar-045/station-status-service/internal/logging"
	"github.com/KEswar-045/station-status-service/internal/store"
)

// main boots the service: config → logger → store → schema → audit →
// HTTP server, then serves until SIGINT/SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		logger.Fatal("store unreachable", zap.Error(err))
	}
	defer db.Close()

	// Ensure required tables/indexes exist so a fresh database works
	// without separate provisioning.
	if err := db.EnsureSchema(); err != nil {
		logger.Fatal("schema bootstrap failed", zap.Error(err))
	}

	auditWriter, err := audit.NewWriter(cfg.AuditFile)
	if err != nil {
		logger.Fatal("audit file unavailable", zap.Error(err))
	}
	defer auditWriter.Close()

	svc := ingest.NewService(db, auditWriter, logger)
	router := httpserver.NewRouter(svc, db)
	server := httpserver.NewServer(cfg.ListenAddr, router, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("shut down cleanly")
}
