package http

import (
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	cookie         config.Cookie
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookie:         cfg.Cookie,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
