// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once per hasher to give Compare something to
// spend bcrypt time on when the caller has no real hash.
const dummyPassword = "recipe-keeper-dummy-password"

type bcryptHasher struct {
	cost      int
	dummyHash []byte
}

// NewBcryptHasher returns a bcrypt-backed [PasswordHasher] using cost as
// the work factor.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("error preparing bcrypt hasher: %w", err)
	}

	return &bcryptHasher{cost: cost, dummyHash: dummy}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	hashed := []byte(hash)
	if hash == "" {
		hashed = h.dummyHash
	}

	err := bcrypt.CompareHashAndPassword(hashed, []byte(password))
	if err != nil || hash == "" {
		return ErrPasswordMismatch
	}

	return nil
}
