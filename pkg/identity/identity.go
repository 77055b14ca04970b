/*
Package identity derives the Gravatar lookup key for an email address.
*/
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
)

// KeyLength is the length of a hex encoded SHA-256 digest.
const KeyLength = sha256.Size * 2

/*
Normalize trims and lowercases the email, then returns the lowercase hex
SHA-256 of its UTF-8 bytes. This must match Gravatar's own hashing exactly,
otherwise lookups come back as not found instead of failing.
*/
func Normalize(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	if normalized == "" {
		return "", errors.InvalidInput("email must not be empty")
	}

	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:]), nil
}

/*
IsKey reports whether s has the shape of a key produced by Normalize.
*/
func IsKey(s string) bool {
	if len(s) != KeyLength {
		return false
	}

	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}

	return true
}
