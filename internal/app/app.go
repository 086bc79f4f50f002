package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"vidstore/internal/config"
	"vidstore/internal/handler"
	"vidstore/internal/service"
	"vidstore/internal/storage"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	cfg    *config.Config
	server *http.Server
	svc    *service.CatalogService
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := configureLogging(cfg); err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	store := storage.NewCatalogStore(cfg.CatalogPath(), cfg.FilePermissions)
	svc := service.NewCatalogService(store)

	app := &App{cfg: cfg, svc: svc}
	app.setupHTTPServer()

	return app, nil
}

func configureLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	return nil
}

func (a *App) setupHTTPServer() {
	httpHandler := handler.NewHTTPHandler(a.svc)

	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)

	var root http.Handler = mux
	if a.cfg.RateLimitRPS > 0 {
		root = handler.NewRateLimitMiddleware(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst).Middleware(root)
	}
	root = handler.RecoveryMiddleware(root)
	root = handler.AccessLogMiddleware(root)
	root = handler.RequestIDMiddleware(root)
	root = cors.New(cors.Options{
		AllowedOrigins: a.cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}).Handler(root)

	a.server = &http.Server{
		Addr:    a.cfg.ServerPort,
		Handler: root,
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.logCatalogStats(ctx)

	go a.startServer()

	return a.waitForShutdown(ctx, cancel)
}

func (a *App) logCatalogStats(ctx context.Context) {
	catalog := a.svc.GetCatalog(ctx)
	videos := 0
	for _, category := range catalog {
		videos += len(category.Videos)
	}

	log.WithFields(log.Fields{
		"path":       a.cfg.CatalogPath(),
		"categories": len(catalog),
		"videos":     videos,
	}).Info("catalog loaded")
}

func (a *App) startServer() {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   a.cfg.ServerPort,
	}).Info("http server listening")

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Fatal("http server failed to start")
	}
}

func (a *App) waitForShutdown(ctx context.Context, cancel context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	}

	cancel()
	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
		return err
	}

	log.Info("graceful shutdown completed")
	return nil
}
