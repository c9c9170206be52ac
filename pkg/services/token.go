package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// agentTokenBytes is the entropy of a freshly minted agent token (256 bits;
// the wire contract requires at least 128).
const agentTokenBytes = 32

// newAgentToken mints a plaintext bearer token and its storage hash.
// Only the hash is ever persisted.
func newAgentToken() (plaintext, hash string, err error) {
	buf := make([]byte, agentTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}
	plaintext = hex.EncodeToString(buf)
	return plaintext, hashToken(plaintext), nil
}

// hashToken returns the hex SHA-256 used to store and look up bearer tokens.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
