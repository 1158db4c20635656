package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// MinSecretBytes is the shortest signing key accepted for HS256 tokens.
const MinSecretBytes = 32

// GenerateJWTSecret returns n random bytes encoded as unpadded URL-safe base64, suitable for
// JWT_SECRET. n below MinSecretBytes is rejected.
func GenerateJWTSecret(n int) (string, error) {
	if n < MinSecretBytes {
		return "", fmt.Errorf("secret must be at least %d bytes, got %d", MinSecretBytes, n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
