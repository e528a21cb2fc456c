// Package cryptox provides the password fingerprinting used by the
// auth layer.
//
// The scheme is a bare SHA-256 over the UTF-8 bytes of the password,
// rendered as lowercase hex. It is deliberately unsalted and
// un-iterated: existing datasets already contain hashes in this form,
// and any change to the scheme would lock every stored account out.
// Do not "harden" it here; a migration path (rehash on successful
// login) is the only acceptable route to a stronger scheme.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPasswordLen is the length of a HashPassword result.
const HashPasswordLen = sha256.Size * 2

// HashPassword returns the lowercase hex SHA-256 digest of password.
// The result is always exactly HashPasswordLen characters.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
