package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const inviteTokenBytes = 32

// GenerateInviteToken returns a 64-character hex token from a
// cryptographically strong random source. Uniqueness is additionally
// enforced by the unique index on the link collection.
func GenerateInviteToken() (string, error) {
	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
