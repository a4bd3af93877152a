package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/stadtwache/stadtwache-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest. Two calls with the same
// input yield different digests.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches digest. A malformed
// digest is logged and treated as a mismatch, never an error.
func VerifyPassword(plain, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Warn("password verification failed", "error", err)
		}
		return false
	}
	return true
}

// StoredDigest is the two-candidate credential lookup: the canonical
// password_hash column first, then the legacy hashed_password column
// kept for records written before the rename.
func StoredDigest(user *models.User) (string, bool) {
	if user.PasswordHash != "" {
		return user.PasswordHash, true
	}
	if user.LegacyPasswordHash != "" {
		return user.LegacyPasswordHash, true
	}
	return "", false
}
