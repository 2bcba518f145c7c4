package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// RecipeValidationService rejects invalid create requests before they reach
// the wrapped RecipeService, so no storage call is made for them.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService(validator validators.Validator) RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validator,
	}
}

func (v *RecipeValidationService) ListOwnedRecipes(ctx context.Context, userID int64) ([]models.RecipeWithOwner, error) {
	return v.inner.ListOwnedRecipes(ctx, userID)
}

func (v *RecipeValidationService) CreateRecipe(ctx context.Context, userID int64, req models.CreateRecipeRequest) (models.RecipeWithOwner, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.RecipeWithOwner{}, err
	}

	return v.inner.CreateRecipe(ctx, userID, req)
}

func (v *RecipeValidationService) Wrap(wrapper RecipeService) RecipeService {
	v.inner = wrapper
	return v
}
