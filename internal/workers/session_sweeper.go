// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// ExpiredSessionDeleter is implemented by session stores that cannot expire
// entries on their own. Len reports the sessions left after a sweep.
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int, error)
	Len() int
}

// SessionSweeper periodically drops expired sessions from an
// [ExpiredSessionDeleter].
type SessionSweeper struct {
	sessions ExpiredSessionDeleter
	interval time.Duration

	logger *logger.Logger
}

func NewSessionSweeper(sessions ExpiredSessionDeleter, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps every interval until ctx is done. Sweep errors are logged and
// do not stop the worker.
func (s *SessionSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return nil
		case <-ticker.C:
			removed, err := s.sessions.DeleteExpired(ctx)
			if err != nil {
				s.logger.Err(err).Msg("error sweeping expired sessions")
				continue
			}
			if removed > 0 {
				s.logger.Debug().
					Int("removed", removed).
					Int("remaining", s.sessions.Len()).
					Msg("expired sessions swept")
			}
		}
	}
}
