package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-recipe-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-recipe-client", cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	if err = run(context.Background(), serverAdapter, cfg.Args, newPasswordSource(os.Stdin, os.Stderr), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
