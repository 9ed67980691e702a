package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filmapp/internal/config"
	"filmapp/internal/container"
	"filmapp/internal/handlers"
	"filmapp/internal/logger"
)

func main() {
	cfg, loaded, err := config.Load(".env.local")
	if err != nil {
		logger.Get().WithError(err).Fatal("Failed to load configuration")
	}

	logger.InitWithOptions(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	log := logger.Get()
	if !loaded {
		log.Info("No .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(c),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("backend", cfg.FavoritesBackend).Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shut down server")
	}
	log.Info("Server stopped")
}
