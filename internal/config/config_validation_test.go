package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/recipes"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
	cfg.applyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.BcryptCost)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, 10, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, SessionBackendRedis, cfg.Storage.Sessions.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.Sessions.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.Storage.Sessions.TTL)
	assert.Equal(t, time.Minute, cfg.Storage.Sessions.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "session", cfg.Server.Cookie.Name)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{BcryptCost: 4},
		Storage: Storage{Sessions: Sessions{Backend: SessionBackendMemory, TTL: time.Hour}},
		Server:  Server{Cookie: Cookie{Name: "sid"}},
	}
	cfg.applyDefaults()

	assert.Equal(t, 4, cfg.App.BcryptCost)
	assert.Equal(t, SessionBackendMemory, cfg.Storage.Sessions.Backend)
	assert.Equal(t, time.Hour, cfg.Storage.Sessions.TTL)
	assert.Equal(t, "sid", cfg.Server.Cookie.Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "bcrypt cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BcryptCost = 1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unsupported driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unsupported session backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Sessions.Backend = "cookie" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:   "sqlite with memory sessions",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Driver = DriverSQLite
				cfg.Storage.Sessions.Backend = SessionBackendMemory
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfigValidate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{Adapter: Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second}}).validate())
	assert.ErrorIs(t, (&ClientConfig{Adapter: Adapter{RequestTimeout: time.Second}}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{Adapter: Adapter{HTTPAddress: "http://x"}}).validate(), ErrInvalidAdapterConfigs)
}
