package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

var ErrInvalidTokenLength = errors.New("token length must be positive")

// GenerateRandomBytes returns securely generated random bytes.
// An error means the system's secure random generator failed and
// the caller should not continue.
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// GenerateRandomString returns a URL-safe random string of exactly s characters.
func GenerateRandomString(s int) (string, error) {
	if s <= 0 {
		return "", ErrInvalidTokenLength
	}
	// base64 yields 4 chars per 3 bytes, so read enough and cut
	b, err := GenerateRandomBytes((s*3)/4 + 3)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b)[:s], nil
}
