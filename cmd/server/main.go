package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/handler"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/server"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/workers"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-recipe-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-recipe-server", cfg.App.LogLevel)
	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run owns every resource it opens; storages are closed before it returns,
// so main may exit afterwards.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	log.Debug().Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("session_backend", cfg.Storage.Sessions.Backend).
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Storage.Sessions, log), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}
