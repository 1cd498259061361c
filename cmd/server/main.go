package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/palmbay-resort/portal-api/internal/api"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
	"github.com/palmbay-resort/portal-api/internal/infrastructure/config"
	mongodb "github.com/palmbay-resort/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/palmbay-resort/portal-api/internal/infrastructure/db/redis"
	"github.com/palmbay-resort/portal-api/internal/infrastructure/notify"
	"github.com/palmbay-resort/portal-api/internal/infrastructure/queue"
	"github.com/palmbay-resort/portal-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Palm Bay Resort Portal API
// @version      1.0
// @description  Guest, staff and admin portals for the Palm Bay resort booking site.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "portal-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The store client is constructed here and injected everywhere it is
	// needed; its lifecycle belongs to this process, not to a package-level
	// singleton.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	var notifier ports.Notifier
	if cfg.SMTP.Host != "" {
		notifier = notify.NewMailer(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			Inbox:    cfg.SMTP.Inbox,
		}, log)
	} else {
		notifier = notify.NewLogNotifier(log)
	}

	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, notifier, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
