package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// versionService reports the configured application version on
// GET /api/version.
type versionService struct {
	version string
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version or only whitespace.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("app info service created")
	return &versionService{version: version}, nil
}

func (s *versionService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("version", s.version).Msg("version requested")
	return s.version
}
