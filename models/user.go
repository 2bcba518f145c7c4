// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the storage-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name. Uniqueness is enforced by the
	// storage layer.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized and never logged.
	PasswordHash string `json:"-"`

	// ImageURL is an optional avatar URL.
	ImageURL *string `json:"image_url"`

	// Bio is an optional free-form description.
	Bio *string `json:"bio"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of the user.
func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}

// Profile is the public view of a [User]. It is what every auth endpoint
// returns and what is nested under each recipe as its owner.
// Optional fields serialize as JSON null when absent.
type Profile struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}
