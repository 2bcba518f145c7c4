// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// recipeRepository is the SQL implementation of [RecipeRepository].
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipeRepository constructs a [RecipeRepository] backed by db.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRecipe inserts recipe and returns it with the assigned ID.
// Any integrity violation reported by the database becomes
// [ErrConstraintViolation].
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCreateRecipeQuery(recipe)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&recipe.ID)
	if err != nil {
		if r.db.Classify(err) != Unclassified {
			log.Warn().Err(err).Int64("user_id", recipe.UserID).Msg("recipe rejected by constraint")
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}

		log.Err(err).Msg("error creating recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return recipe, nil
}

// ListRecipesByOwner loads every recipe of userID joined with its owner.
// An owner without recipes yields an empty, non-nil slice.
func (r *recipeRepository) ListRecipesByOwner(ctx context.Context, userID int64) ([]models.RecipeWithOwner, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListRecipesByOwnerQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("error listing recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.RecipeWithOwner, 0)
	for rows.Next() {
		var rec models.RecipeWithOwner
		if err = rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Instructions,
			&rec.MinutesToComplete,
			&rec.UserID,
			&rec.User.ID,
			&rec.User.Username,
			&rec.User.ImageURL,
			&rec.User.Bio,
		); err != nil {
			log.Err(err).Msg("error scanning recipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, rec)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating recipe rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}
