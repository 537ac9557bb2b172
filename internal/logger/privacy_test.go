package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize hash salt for all tests in this package.
	InitHashSaltForTesting("test-salt-for-unit-tests-minimum-32-chars")
	os.Exit(m.Run())
}

func TestHashUserID(t *testing.T) {
	t.Run("produces consistent hash for same user ID", func(t *testing.T) {
		hash1 := HashUserID("2d4f7c1a-9f3e-4b8e-9a21-0f6f2a2d9b11")
		hash2 := HashUserID("2d4f7c1a-9f3e-4b8e-9a21-0f6f2a2d9b11")
		require.Equal(t, hash1, hash2)
	})

	t.Run("produces different hashes for different user IDs", func(t *testing.T) {
		hash1 := HashUserID("2d4f7c1a-9f3e-4b8e-9a21-0f6f2a2d9b11")
		hash2 := HashUserID("7f1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8")
		require.NotEqual(t, hash1, hash2)
	})

	t.Run("produces 8 character hash", func(t *testing.T) {
		hash := HashUserID("2d4f7c1a-9f3e-4b8e-9a21-0f6f2a2d9b11")
		require.Len(t, hash, 8)
	})

	t.Run("changes hash when salt changes", func(t *testing.T) {
		originalSalt := hashSalt
		defer func() { hashSalt = originalSalt }()

		hash1 := HashUserID("2d4f7c1a-9f3e-4b8e-9a21-0f6f2a2d9b11")

		hashSalt = "different-salt"
		hash2 := HashUserID("2d4f7c1a-9f3e-4b8e-9a21-0f6f2a2d9b11")

		require.NotEqual(t, hash1, hash2)
	})
}

func TestSanitizeDescription(t *testing.T) {
	t.Run("redacts empty description", func(t *testing.T) {
		result := SanitizeDescription("")
		require.Equal(t, "<empty>", result)
	})

	t.Run("shows word and character count", func(t *testing.T) {
		result := SanitizeDescription("burger and fries combo")
		require.Contains(t, result, "4 words")
		require.Contains(t, result, "22 chars")
		require.NotContains(t, result, "burger")
	})
}

func TestSanitizeText(t *testing.T) {
	t.Run("redacts empty text", func(t *testing.T) {
		require.Equal(t, "<empty>", SanitizeText(""))
	})

	t.Run("hides short text entirely", func(t *testing.T) {
		result := SanitizeText("secret")
		require.Equal(t, "<6 chars>", result)
	})

	t.Run("shows only prefix of long text", func(t *testing.T) {
		result := SanitizeText("a very long user provided string")
		require.Equal(t, "a v...<32 chars>", result)
	})
}
