package service

import "errors"

var (
	// ErrDuplicateUsername is returned by Register when the username is taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated is returned when no live session backs the request.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrOwnerNotFound is returned by CreateRecipe when the session identity
	// no longer resolves to a user.
	ErrOwnerNotFound = errors.New("user not found")

	// ErrRecipeNotSaved is returned by CreateRecipe when storage rejects the
	// recipe on an integrity constraint.
	ErrRecipeNotSaved = errors.New("there was an issue saving your recipe")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
