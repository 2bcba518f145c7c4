// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-recipe-keeper services, handlers and middleware.
//
// All Msg* constants are client-facing strings written into the
// {"errors": [...]} body of non-2xx responses. Keeping them in one place
// keeps the wording consistent throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgLoginRequired is returned by login when either credential is empty.
	MsgLoginRequired = "Username and password are required"

	// MsgUsernameTaken is returned by signup for an existing username.
	MsgUsernameTaken = "Username already taken"

	// MsgInvalidCredentials is returned when the username/password pair
	// does not match any user.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgNotLoggedIn is returned by check_session and logout without a
	// live session.
	MsgNotLoggedIn = "Not logged in"

	// MsgUnauthorized is returned by the recipe routes without a live
	// session.
	MsgUnauthorized = "Unauthorized"

	// MsgUserNotFound is returned when the session owner no longer exists.
	MsgUserNotFound = "User not found"

	// MsgRecipeNotSaved is returned when the store rejects a recipe.
	MsgRecipeNotSaved = "There was an issue saving your recipe."

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	// MsgInternalServerError is returned for any unexpected failure. Details
	// are logged and never sent to the client.
	MsgInternalServerError = "Internal server error"
)
