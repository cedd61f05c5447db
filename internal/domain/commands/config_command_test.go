//go:build unit

package commands_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/commitforge/internal/domain/commands"
	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

func TestConfigCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should set and persist a value", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "config.json")
		cmd := &commands.ConfigCommand{Path: path, Input: strings.NewReader("")}

		// when
		err := cmd.Execute(context.Background(), "set", entities.KeyGitHubToken, "ghp_123456")

		// then
		require.NoError(t, err)
		settings, loadErr := entities.LoadSettings(path)
		require.NoError(t, loadErr)
		assert.Equal(t, "ghp_123456", settings.GitHubToken)
	})

	t.Run("should require a key for the set action", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := &commands.ConfigCommand{Path: filepath.Join(t.TempDir(), "config.json")}

		// when
		err := cmd.Execute(context.Background(), "set", "", "value")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--key is required")
	})

	t.Run("should get a previously set value", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "config.json")
		cmd := &commands.ConfigCommand{Path: path}
		require.NoError(t, cmd.Execute(context.Background(), "set", entities.KeyDefaultModel, "openai/gpt-4o-mini"))

		// when
		err := cmd.Execute(context.Background(), "get", entities.KeyDefaultModel, "")

		// then
		require.NoError(t, err)
	})

	t.Run("should reject an unknown action", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := &commands.ConfigCommand{Path: filepath.Join(t.TempDir(), "config.json")}

		// when
		err := cmd.Execute(context.Background(), "wipe", "", "")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown config action")
	})

	t.Run("should walk every key during setup and keep blanks unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "config.json")
		seeded := &entities.Settings{GitHubToken: "ghp_old"}
		require.NoError(t, seeded.Save(path))
		answers := strings.Join([]string{
			"sk-or-v1-new", // openRouterApiKey
			"",             // githubToken, keep ghp_old
			"openai/gpt-4o-mini",
			"5",
		}, "\n")
		cmd := &commands.ConfigCommand{Path: path, Input: strings.NewReader(answers)}

		// when
		err := cmd.Execute(context.Background(), "setup", "", "")

		// then
		require.NoError(t, err)
		settings, loadErr := entities.LoadSettings(path)
		require.NoError(t, loadErr)
		assert.Equal(t, "sk-or-v1-new", settings.OpenRouterAPIKey)
		assert.Equal(t, "ghp_old", settings.GitHubToken)
		assert.Equal(t, "openai/gpt-4o-mini", settings.DefaultModel)
		assert.Equal(t, 5, settings.MaxConcurrency)
	})

	t.Run("should reject a bad answer during setup", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "config.json")
		answers := strings.Join([]string{"", "", "", "lots"}, "\n")
		cmd := &commands.ConfigCommand{Path: path, Input: strings.NewReader(answers)}

		// when
		err := cmd.Execute(context.Background(), "setup", "", "")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be an integer")
	})
}
