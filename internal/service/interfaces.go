package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// AuthService manages credentials and the session lifecycle.
type AuthService interface {
	// Register creates a user and opens a session for it.
	Register(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)

	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// CheckSession returns the profile of the user bound to sessionID.
	CheckSession(ctx context.Context, sessionID string) (models.Profile, error)

	// ResolveSession returns the live session for sessionID without loading
	// the user. It backs the session middleware of protected routes.
	ResolveSession(ctx context.Context, sessionID string) (models.Session, error)

	// Logout destroys the session.
	Logout(ctx context.Context, sessionID string) error
}

// RecipeService reads and creates recipes on behalf of a session identity.
type RecipeService interface {
	ListOwnedRecipes(ctx context.Context, userID int64) ([]models.RecipeWithOwner, error)
	CreateRecipe(ctx context.Context, userID int64, req models.CreateRecipeRequest) (models.RecipeWithOwner, error)
}

// RecipeServiceWrapper defines middleware composition for RecipeService.
// Implementations wrap an existing RecipeService to add behavior such as
// logging or validating.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService // returns a decorated RecipeService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces opaque random session identifiers.
type IDGenerator interface {
	Generate() string
}
