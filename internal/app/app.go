package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/careportal-backend/internal/adapter/memory"
	postgres "github.com/heartmarshall/careportal-backend/internal/adapter/postgres"
	pgrecord "github.com/heartmarshall/careportal-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/careportal-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/careportal-backend/internal/app/seeder"
	"github.com/heartmarshall/careportal-backend/internal/config"
	"github.com/heartmarshall/careportal-backend/internal/record"
	"github.com/heartmarshall/careportal-backend/internal/service/directory"
	"github.com/heartmarshall/careportal-backend/internal/service/escalation"
	"github.com/heartmarshall/careportal-backend/internal/service/journal"
	"github.com/heartmarshall/careportal-backend/internal/service/session"
)

// Portal is the wired core: one record store and the services built on it.
type Portal struct {
	Store      *record.Store
	Directory  *directory.Service
	Session    *session.Service
	Messages   *journal.Service
	Issues     *journal.Service
	Escalation *escalation.Service
	Seeder     *seeder.Seeder

	closers []func() error
}

// Open connects the configured backend, builds the services and, when
// seeding is enabled, writes the demo users into an empty directory.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Portal, error) {
	backend, closers, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	p := New(logger, backend, cfg.Directory, clockwork.NewRealClock())
	p.closers = closers

	if cfg.Seed.Enabled {
		if _, err := p.Seeder.EnsureSeeded(ctx); err != nil {
			_ = p.Close()
			return nil, err
		}
	}

	logger.DebugContext(ctx, "portal opened",
		slog.String("driver", cfg.Store.Driver),
		slog.String("version", BuildVersion()),
	)
	return p, nil
}

// New wires the services over an already opened backend.
func New(logger *slog.Logger, backend record.Backend, codes config.DirectoryConfig, clock clockwork.Clock) *Portal {
	store := record.NewStore(logger, backend)
	dir := directory.NewService(logger, store, codes)
	esc := escalation.NewService(logger, store, dir, clock)

	return &Portal{
		Store:      store,
		Directory:  dir,
		Session:    session.NewService(logger, store, dir),
		Messages:   journal.NewService(logger, store, clock, journal.Messages, esc),
		Issues:     journal.NewService(logger, store, clock, journal.Issues),
		Escalation: esc,
		Seeder:     seeder.New(logger, dir),
	}
}

// Close releases the backend. It is safe to call more than once.
func (p *Portal) Close() error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

func openBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (record.Backend, []func() error, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return memory.New(), nil, nil

	case config.DriverSQLite:
		pool, err := sqlite.Open(cfg.SQLite, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return sqlite.NewBackend(pool), []func() error{pool.Close}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, nil, fmt.Errorf("migrate postgres store: %w", err)
			}
		}
		closer := func() error {
			pool.Close()
			return nil
		}
		return pgrecord.New(pool, postgres.NewTxManager(pool)), []func() error{closer}, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
