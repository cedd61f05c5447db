//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

func TestParseCommitMessage(t *testing.T) {
	t.Parallel()

	t.Run("should parse a scoped conventional commit line", func(t *testing.T) {
		t.Parallel()

		// given
		reply := "feat(api): add pagination to the list endpoint"

		// when
		message, ok := entities.ParseCommitMessage(reply)

		// then
		require.True(t, ok)
		assert.Equal(t, "feat", message.Type)
		assert.Equal(t, "api", message.Scope)
		assert.Equal(t, "add pagination to the list endpoint", message.Subject)
		assert.Equal(t, reply, message.Formatted)
	})

	t.Run("should parse a line without a scope", func(t *testing.T) {
		t.Parallel()

		// given
		reply := "fix: handle empty diff output"

		// when
		message, ok := entities.ParseCommitMessage(reply)

		// then
		require.True(t, ok)
		assert.Equal(t, "fix", message.Type)
		assert.Empty(t, message.Scope)
		assert.Equal(t, "handle empty diff output", message.Subject)
	})

	t.Run("should skip preamble lines and code fences", func(t *testing.T) {
		t.Parallel()

		// given
		reply := "Here is your commit message:\n\n`refactor(git): extract diff parsing`"

		// when
		message, ok := entities.ParseCommitMessage(reply)

		// then
		require.True(t, ok)
		assert.Equal(t, "refactor", message.Type)
		assert.Equal(t, "git", message.Scope)
		assert.Equal(t, "extract diff parsing", message.Subject)
	})

	t.Run("should report a miss for free-form replies", func(t *testing.T) {
		t.Parallel()

		// given
		reply := "The changes look like a cleanup of the settings file."

		// when
		_, ok := entities.ParseCommitMessage(reply)

		// then
		assert.False(t, ok)
	})
}

func TestFallbackCommitMessage(t *testing.T) {
	t.Parallel()

	t.Run("should wrap the first non-empty line in a chore message", func(t *testing.T) {
		t.Parallel()

		// given
		reply := "\nUpdated the settings file\nand more text"

		// when
		message := entities.FallbackCommitMessage(reply)

		// then
		assert.Equal(t, "chore", message.Type)
		assert.Equal(t, "Updated the settings file", message.Subject)
		assert.Equal(t, "chore: Updated the settings file", message.Formatted)
	})

	t.Run("should produce a placeholder for an empty reply", func(t *testing.T) {
		t.Parallel()

		// given
		reply := "   \n  "

		// when
		message := entities.FallbackCommitMessage(reply)

		// then
		assert.Equal(t, "chore: update files", message.Formatted)
	})
}
