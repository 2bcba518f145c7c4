package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// redisSessionStorage keeps each session as a JSON value under
// "session:<id>" with a TTL equal to the session's remaining lifetime.
type redisSessionStorage struct {
	client redis.Cmdable
	logger *logger.Logger
	now    func() time.Time
}

// NewConnectRedis creates a go-redis client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Sessions, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("addr", cfg.RedisAddr).Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis successfully")

	return client, nil
}

// NewRedisSessionStorage constructs a [SessionStorage] on top of client.
func NewRedisSessionStorage(client redis.Cmdable, log *logger.Logger) SessionStorage {
	return &redisSessionStorage{
		client: client,
		logger: log,
		now:    time.Now,
	}
}

func (s *redisSessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", ErrSessionBackend)
	}

	value, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionBackend, err)
	}

	if err = s.client.Set(ctx, sessionKey(session.ID), value, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSessionBackend, err)
	}

	return nil
}

func (s *redisSessionStorage) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	value, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionBackend, err)
	}

	var session models.Session
	if err = json.Unmarshal(value, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: malformed session: %w", ErrSessionBackend, err)
	}

	if session.Expired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *redisSessionStorage) DeleteSession(ctx context.Context, sessionID string) error {
	deleted, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrSessionBackend, err)
	}

	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
