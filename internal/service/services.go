package service

import (
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/crypto"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	RecipeService  RecipeService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.SessionStorage,
			storages.Transactor,
			hasher,
			validator,
			utils.NewUUIDGenerator(),
			cfg.Storage.Sessions.TTL,
			logger,
		),
		RecipeService: NewRecipeValidationService(validator).Wrap(
			NewRecipeService(storages.UserRepository, storages.RecipeRepository, storages.Transactor, logger),
		),
		AppInfoService: appInfoService,
	}, nil
}
