package utils

import "github.com/google/uuid"

// UUIDGenerator produces random identifiers for sessions and traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random (version 4) UUID string. Session identifiers
// must not be guessable, so time-ordered versions are not used here.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
