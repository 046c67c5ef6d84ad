// Command seeder writes the demo accounts into the configured store when its
// directory is empty. It ignores seed.enabled and always attempts seeding.
//
// Flags:
//
//	--config  path to the YAML config file (default: CONFIG_PATH or ./config.yaml)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/careportal-backend/internal/app"
	"github.com/heartmarshall/careportal-backend/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("seeder", flag.ContinueOnError)
	configFlag := fs.String("config", "", "path to YAML config file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	path := *configFlag
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}
	cfg.Seed.Enabled = false

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("open portal", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := p.Close(); err != nil {
			logger.Error("close portal", slog.String("error", err.Error()))
		}
	}()

	seeded, err := p.Seeder.EnsureSeeded(ctx)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		return 1
	}

	logger.Info("seeding completed", slog.Bool("written", seeded))
	return 0
}
