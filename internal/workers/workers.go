package workers

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers selects the background workers the configured storages need.
// Only the memory session backend needs a sweeper; Redis expires keys itself.
func NewWorkers(storages *store.Storages, cfg config.Sessions, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if storages.MemorySessions != nil && cfg.SweepInterval > 0 {
		ws.workers = append(ws.workers, NewSessionSweeper(storages.MemorySessions, cfg.SweepInterval, logger))
	}

	return ws
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. The first error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	return g.Wait()
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
