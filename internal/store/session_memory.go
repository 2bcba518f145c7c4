package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// MemorySessionStorage is an in-process [SessionStorage] for local runs and
// tests. Expired entries are dropped lazily on read and in bulk by
// [MemorySessionStorage.DeleteExpired], which the session sweeper worker
// calls periodically.
type MemorySessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

// NewMemorySessionStorage constructs an empty [MemorySessionStorage].
func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (s *MemorySessionStorage) SaveSession(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

func (s *MemorySessionStorage) GetSession(_ context.Context, sessionID string) (models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *MemorySessionStorage) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)

	if session.Expired(s.now()) {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes every expired session and returns how many were
// removed.
func (s *MemorySessionStorage) DeleteExpired(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed, nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemorySessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
