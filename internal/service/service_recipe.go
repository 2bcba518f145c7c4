package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type recipeService struct {
	users      store.UserRepository
	recipes    store.RecipeRepository
	transactor store.Transactor

	logger *logger.Logger
}

// NewRecipeService constructs a RecipeService that trusts its input.
// Wrap it with [NewRecipeValidationService] before exposing it.
func NewRecipeService(users store.UserRepository, recipes store.RecipeRepository, transactor store.Transactor, logger *logger.Logger) RecipeService {
	return &recipeService{
		users:      users,
		recipes:    recipes,
		transactor: transactor,
		logger:     logger,
	}
}

// ListOwnedRecipes returns every recipe owned by userID, ordered by ID.
func (s *recipeService) ListOwnedRecipes(ctx context.Context, userID int64) ([]models.RecipeWithOwner, error) {
	recipes, err := s.recipes.ListRecipesByOwner(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("error listing recipes")
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}

	return recipes, nil
}

// CreateRecipe resolves the owner and inserts the recipe in one
// transaction.
//
// Returns:
//   - ErrOwnerNotFound if userID no longer resolves to a user.
//   - ErrRecipeNotSaved if storage rejects the row on a constraint.
//   - A wrapped storage error for anything else.
func (s *recipeService) CreateRecipe(ctx context.Context, userID int64, req models.CreateRecipeRequest) (models.RecipeWithOwner, error) {
	log := logger.FromContext(ctx)

	var created models.RecipeWithOwner
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		owner, err := s.users.FindUserByID(ctx, userID)
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrOwnerNotFound
		}
		if err != nil {
			return fmt.Errorf("owner search ended with error: %w", err)
		}

		recipe, err := s.recipes.CreateRecipe(ctx, req.Recipe(owner.ID))
		if errors.Is(err, store.ErrConstraintViolation) {
			return fmt.Errorf("%w: %w", ErrRecipeNotSaved, err)
		}
		if err != nil {
			return fmt.Errorf("recipe creation ended with error: %w", err)
		}

		created = models.RecipeWithOwner{Recipe: recipe, User: owner.Profile()}
		return nil
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe was not created")
		return models.RecipeWithOwner{}, err
	}

	log.Info().Int64("user_id", userID).Int64("recipe_id", created.ID).Msg("recipe created")
	return created, nil
}
