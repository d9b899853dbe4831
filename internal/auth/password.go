package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// LegacyDigest returns the unsalted SHA-256 hex digest older accounts were
// stored with.
func LegacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks plain against a stored bcrypt or legacy digest.
func VerifyPassword(stored, plain string) bool {
	if stored == "" {
		return false
	}
	if !IsLegacyDigest(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(LegacyDigest(plain))) == 1
}

// IsLegacyDigest reports whether stored predates bcrypt.
func IsLegacyDigest(stored string) bool {
	return !strings.HasPrefix(stored, "$2")
}
