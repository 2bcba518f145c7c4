// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultVersion        = "dev"
	defaultLogLevel       = "debug"
	defaultMaxOpenConns   = 10
	defaultRedisAddr      = "localhost:6379"
	defaultSessionTTL     = 24 * time.Hour
	defaultSweepInterval  = time.Minute
	defaultRequestTimeout = 30 * time.Second
	defaultCookieName     = "session"
)

// applyDefaults fills zero-valued optional fields after all sources have
// been merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}

	if cfg.Storage.Sessions.Backend == "" {
		cfg.Storage.Sessions.Backend = SessionBackendRedis
	}
	if cfg.Storage.Sessions.RedisAddr == "" {
		cfg.Storage.Sessions.RedisAddr = defaultRedisAddr
	}
	if cfg.Storage.Sessions.TTL == 0 {
		cfg.Storage.Sessions.TTL = defaultSessionTTL
	}
	if cfg.Storage.Sessions.SweepInterval == 0 {
		cfg.Storage.Sessions.SweepInterval = defaultSweepInterval
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.Cookie.Name == "" {
		cfg.Server.Cookie.Name = defaultCookieName
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the merged server configuration can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Sessions.Backend {
	case SessionBackendRedis, SessionBackendMemory:
	default:
		return fmt.Errorf("%w: unsupported session backend %q", ErrInvalidStorageConfigs, cfg.Storage.Sessions.Backend)
	}
	if cfg.Storage.Sessions.TTL < 0 {
		return fmt.Errorf("%w: negative session TTL", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
