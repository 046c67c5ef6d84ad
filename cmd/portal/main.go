// Command portal is the operator command line of the care portal.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; see internal/config.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/careportal-backend/internal/app"
	"github.com/heartmarshall/careportal-backend/internal/config"
	"github.com/heartmarshall/careportal-backend/internal/transport/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	open := func(ctx context.Context) (*app.Portal, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		logger := app.NewLogger(cfg.Log)
		p, err := app.Open(ctx, cfg, logger)
		if err != nil {
			logger.ErrorContext(ctx, "open portal", slog.String("error", err.Error()))
			return nil, err
		}
		return p, nil
	}

	if err := cli.Execute(ctx, open, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
