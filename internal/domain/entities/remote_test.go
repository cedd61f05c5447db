//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

func TestParseRemoteURL(t *testing.T) {
	t.Parallel()

	t.Run("should parse an SSH remote", func(t *testing.T) {
		t.Parallel()

		// given
		rawURL := "git@github.com:acme/widgets.git"

		// when
		owner, name, err := entities.ParseRemoteURL(rawURL)

		// then
		require.NoError(t, err)
		assert.Equal(t, "acme", owner)
		assert.Equal(t, "widgets", name)
	})

	t.Run("should parse an HTTPS remote", func(t *testing.T) {
		t.Parallel()

		// given
		rawURL := "https://github.com/acme/widgets.git"

		// when
		owner, name, err := entities.ParseRemoteURL(rawURL)

		// then
		require.NoError(t, err)
		assert.Equal(t, "acme", owner)
		assert.Equal(t, "widgets", name)
	})

	t.Run("should parse an HTTPS remote without the .git suffix", func(t *testing.T) {
		t.Parallel()

		// given
		rawURL := "https://github.com/acme/widgets"

		// when
		owner, name, err := entities.ParseRemoteURL(rawURL)

		// then
		require.NoError(t, err)
		assert.Equal(t, "acme", owner)
		assert.Equal(t, "widgets", name)
	})

	t.Run("should parse an ssh scheme remote", func(t *testing.T) {
		t.Parallel()

		// given
		rawURL := "ssh://git@github.com/acme/widgets.git"

		// when
		owner, name, err := entities.ParseRemoteURL(rawURL)

		// then
		require.NoError(t, err)
		assert.Equal(t, "acme", owner)
		assert.Equal(t, "widgets", name)
	})

	t.Run("should reject a non-GitHub remote", func(t *testing.T) {
		t.Parallel()

		// given
		rawURL := "git@gitlab.com:acme/widgets.git"

		// when
		_, _, err := entities.ParseRemoteURL(rawURL)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a GitHub URL")
	})

	t.Run("should reject a remote without an owner and repo", func(t *testing.T) {
		t.Parallel()

		// given
		rawURL := "https://github.com/acme"

		// when
		_, _, err := entities.ParseRemoteURL(rawURL)

		// then
		require.Error(t, err)
	})
}
