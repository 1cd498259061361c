package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	digestIterations = 4096
	digestKeyLen     = 32
)

// HashSecret derives a hex digest from a plaintext secret, keyed by the
// portal's server-side salt. The derivation is deterministic: the salt is
// per portal, not per identity, so equal secrets within a portal always
// produce equal digests, and a digest minted under one portal's salt never
// verifies under another's.
func HashSecret(secret, portalSalt string) string {
	key := pbkdf2.Key([]byte(secret), []byte(portalSalt), digestIterations, digestKeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// VerifySecret reports whether secret hashes to storedDigest under the
// portal salt. Comparison is constant-time.
func VerifySecret(secret, portalSalt, storedDigest string) bool {
	digest := HashSecret(secret, portalSalt)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
