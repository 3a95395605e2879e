package services

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the one-way hashing collaborator used for registration
// and login. The stored hash is opaque to the rest of the layer.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hashed, plaintext string) error
}

// BcryptHasher implements PasswordHasher with bcrypt at the default cost.
type BcryptHasher struct{}

// NewBcryptHasher creates a new BcryptHasher.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// Hash returns the bcrypt hash of the plaintext.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether the plaintext matches the stored hash.
func (h *BcryptHasher) Compare(hashed, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
}
