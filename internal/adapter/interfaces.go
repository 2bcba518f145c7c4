// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-recipe-keeper HTTP API.
//
// [ServerAdapter] hides the transport from the CLI. The HTTP implementation
// keeps the session cookie issued by the server between calls, so a Login
// followed by CreateRecipe on the same adapter is authenticated.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrUnprocessable] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// ServerAdapter defines the calls the CLI makes against the server.
type ServerAdapter interface {
	// Signup creates an account and starts a session for it.
	Signup(ctx context.Context, req models.SignupRequest) (models.Profile, error)

	// Login starts a session for existing credentials.
	Login(ctx context.Context, req models.LoginRequest) (models.Profile, error)

	// CheckSession returns the profile bound to the current session.
	CheckSession(ctx context.Context) (models.Profile, error)

	// Logout ends the current session.
	Logout(ctx context.Context) error

	// ListRecipes returns the recipes owned by the logged-in user.
	ListRecipes(ctx context.Context) ([]models.RecipeWithOwner, error)

	// CreateRecipe stores a new recipe owned by the logged-in user.
	CreateRecipe(ctx context.Context, req models.CreateRecipeRequest) (models.RecipeWithOwner, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
