package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// Storages bundles every persistence dependency of the service layer.
type Storages struct {
	UserRepository   UserRepository
	RecipeRepository RecipeRepository
	SessionStorage   SessionStorage
	Transactor       Transactor

	// MemorySessions is set only when the memory session backend is used;
	// the session sweeper worker runs against it.
	MemorySessions *MemorySessionStorage

	closers []func() error
}

// NewStorages connects to the configured database, applies migrations and
// connects the configured session backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: database driver %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecipeRepository: NewRecipeRepository(db, log),
		Transactor:       db,
		closers:          []func() error{db.Close},
	}

	switch cfg.Sessions.Backend {
	case config.SessionBackendRedis:
		client, err := NewConnectRedis(ctx, cfg.Sessions, log)
		if err != nil {
			storages.Close()
			return nil, fmt.Errorf("error connecting session storage: %w", err)
		}
		storages.SessionStorage = NewRedisSessionStorage(client, log)
		storages.closers = append(storages.closers, client.Close)
	case config.SessionBackendMemory:
		storages.MemorySessions = NewMemorySessionStorage()
		storages.SessionStorage = storages.MemorySessions
	default:
		storages.Close()
		return nil, fmt.Errorf("%w: session backend %q", ErrUnsupportedDriver, cfg.Sessions.Backend)
	}

	return storages, nil
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil

	return errors.Join(errs...)
}
