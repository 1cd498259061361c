package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes gives 256 bits of entropy per session token.
const tokenBytes = 32

// IssueToken returns a new opaque bearer token as a 64-character hex string.
// Tokens carry no embedded identity or expiry; a token is valid exactly as
// long as an identity record holds it.
func IssueToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
