package main

import (
	"context"
	"errors"
	"os"

	"filmapp/internal/commands"
	"filmapp/internal/config"
	"filmapp/internal/container"
	"filmapp/internal/logger"

	"github.com/fatih/color"
)

func main() {
	cfg, _, err := config.Load(config.GetEnv("FILMCTL_ENV_FILE", ".env.local"))
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The CLI keeps stdout and stderr clean; logs only go to LOG_FILE when one is configured.
	log := logger.Discard()
	if cfg.LogFile != "" {
		logger.InitWithOptions(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, FileOnly: true})
		log = logger.Get()
	}

	ctx := context.Background()
	c, err := container.New(ctx, cfg, log)
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	handler := commands.NewHandler(c.Catalog, c.Favorites, log, os.Stdout)
	err = handler.Process(ctx, os.Args[1:])
	c.Close()

	switch {
	case errors.Is(err, commands.ErrUsage):
		os.Exit(2)
	case err != nil:
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
