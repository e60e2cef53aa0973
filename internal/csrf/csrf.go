// Package csrf implements the anti-forgery token scheme guarding mutating
// endpoints. A per-client secret lives in an httpOnly cookie; tokens handed
// to the client embed a salt and an HMAC of that salt under the secret, so
// the server verifies statelessly without storing issued tokens.
package csrf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	secretBytes = 24
	saltBytes   = 8
)

// NewSecret generates a fresh client secret.
func NewSecret() (string, error) {
	return randomString(secretBytes)
}

// Create mints a token bound to secret. Every call produces a distinct
// token; all of them verify against the same secret. The separator must
// stay outside the base64url alphabet, or Verify would split inside a
// salt that happens to contain it.
func Create(secret string) (string, error) {
	salt, err := randomString(saltBytes)
	if err != nil {
		return "", err
	}
	return salt + "." + sign(secret, salt), nil
}

// Verify reports whether token was minted from secret.
func Verify(secret, token string) bool {
	if secret == "" || token == "" {
		return false
	}

	salt, mac, ok := strings.Cut(token, ".")
	if !ok || salt == "" {
		return false
	}

	return hmac.Equal([]byte(sign(secret, salt)), []byte(mac))
}

func sign(secret, salt string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(salt))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

func randomString(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading entropy: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
