// Package store implements persistence for users, recipes and sessions.
//
// Users and recipes live in a SQL database (PostgreSQL through pgx, or
// SQLite for local runs). Sessions live in Redis or in process memory.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID.
	// Returns ErrUsernameAlreadyExists on a uniqueness conflict.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrNoUserWasFound when absent.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound when absent.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// RecipeRepository persists recipes. Owner profiles are loaded with an
// explicit join, never lazily.
type RecipeRepository interface {
	// CreateRecipe inserts recipe and returns it with the assigned ID.
	// Returns ErrConstraintViolation when the database rejects the row.
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// ListRecipesByOwner returns every recipe of userID ordered by ID,
	// each with the owner's profile.
	ListRecipesByOwner(ctx context.Context, userID int64) ([]models.RecipeWithOwner, error)
}

// SessionStorage keeps server-side session bindings.
type SessionStorage interface {
	// SaveSession stores session until session.ExpiresAt.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns ErrSessionNotFound for unknown or expired IDs.
	GetSession(ctx context.Context, sessionID string) (models.Session, error)

	// DeleteSession returns ErrSessionNotFound when nothing was deleted.
	DeleteSession(ctx context.Context, sessionID string) error
}

// Transactor runs fn inside a database transaction. Repository calls made
// with the ctx passed to fn join that transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
