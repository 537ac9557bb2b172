package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

var hashSalt string

func init() {
	// Load salt from environment or fall back to a default.
	// In production, set LOG_HASH_SALT environment variable.
	hashSalt = os.Getenv("LOG_HASH_SALT")
	if hashSalt == "" {
		hashSalt = "default-salt-change-in-production"
	}
}

// InitHashSalt re-reads the salt from the environment. Call after config load.
func InitHashSalt() {
	if salt := os.Getenv("LOG_HASH_SALT"); salt != "" {
		hashSalt = salt
	}
}

// InitHashSaltForTesting overrides the salt with a fixed value for tests.
func InitHashSaltForTesting(salt string) {
	hashSalt = salt
}

// HashUserID creates a privacy-preserving hash of a user ID.
// This allows tracking user actions without exposing actual user IDs.
func HashUserID(userID string) string {
	data := fmt.Sprintf("%s:%s", userID, hashSalt)
	hash := sha256.Sum256([]byte(data))
	// Return first 8 characters for readability
	return hex.EncodeToString(hash[:])[:8]
}

// SanitizeDescription removes or truncates sensitive information from descriptions.
// This redacts the description but preserves length information for debugging.
func SanitizeDescription(desc string) string {
	if desc == "" {
		return "<empty>"
	}

	words := strings.Fields(desc)
	return fmt.Sprintf("<redacted: %d words, %d chars>", len(words), len(desc))
}

// SanitizeText is a general-purpose sanitizer for any user-provided text.
func SanitizeText(text string) string {
	if text == "" {
		return "<empty>"
	}

	if len(text) <= 10 {
		return fmt.Sprintf("<%d chars>", len(text))
	}

	return fmt.Sprintf("%s...<%d chars>", text[:3], len(text))
}
