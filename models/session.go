// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session binds an opaque client-held identifier to a user.
//
// The identifier travels in an HttpOnly cookie; the binding itself lives
// only on the server side (Redis or the in-memory store).
type Session struct {
	// ID is the random opaque session identifier.
	ID string `json:"id"`

	// UserID is the identity the session was issued for.
	UserID int64 `json:"user_id"`

	// ExpiresAt is the instant after which the session is no longer valid.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// AuthResult is returned by successful signup and login: the user's public
// profile plus the freshly issued session.
type AuthResult struct {
	Profile Profile
	Session Session
}
