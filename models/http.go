// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	ImageURL *string `json:"image_url,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// User converts the request to a [User] holding the given password hash.
func (r SignupRequest) User(passwordHash string) User {
	return User{
		Username:     r.Username,
		PasswordHash: passwordHash,
		ImageURL:     r.ImageURL,
		Bio:          r.Bio,
	}
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateRecipeRequest is the body of POST /api/recipes.
//
// Instructions are measured in characters (Unicode code points), not bytes.
type CreateRecipeRequest struct {
	Title             string `json:"title" validate:"required"`
	Instructions      string `json:"instructions" validate:"required,min=50"`
	MinutesToComplete *int   `json:"minutes_to_complete,omitempty" validate:"omitempty,gte=0"`
}

// Recipe converts the request to a [Recipe] owned by userID.
func (r CreateRecipeRequest) Recipe(userID int64) Recipe {
	return Recipe{
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            userID,
	}
}
