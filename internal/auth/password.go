// Package auth wraps bcrypt for credential hashing. The salt is
// generated per hash and embedded in the output, so no separate salt
// column exists anywhere.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const defaultCost = 12

// PasswordHasher is a struct so the cost can be lowered in tests;
// cost 12 takes roughly a quarter second per hash.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: defaultCost}
}

// NewPasswordHasherWithCost is meant for tests; bcrypt.MinCost keeps
// them fast. Do not use a reduced cost in production.
func NewPasswordHasherWithCost(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of the plaintext. bcrypt
// silently truncates beyond 72 bytes, so longer inputs are rejected.
func (p *PasswordHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash.
// The comparison is constant-time inside bcrypt. Malformed hash bytes
// come back as a plain false, indistinguishable from a wrong password.
func (p *PasswordHasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
