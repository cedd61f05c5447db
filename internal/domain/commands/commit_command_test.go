//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/commitforge/internal/domain/commands"
	"github.com/rios0rios0/commitforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitforge/internal/domain/repositories"
	doubles "github.com/rios0rios0/commitforge/test/infrastructure/repositorydoubles"
)

func newCommitFixture(
	git *doubles.SpyGitRepository,
	model *doubles.SpyModelRepository,
) *commands.CommitCommand {
	return commands.NewCommitCommand(
		git,
		func(_, _ string, _ int) domainRepos.ModelRepository { return model },
	)
}

func TestCommitCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should commit staged files in order without pushing", func(t *testing.T) {
		t.Parallel()

		// given
		gitSpy := &doubles.SpyGitRepository{Staged: stagedChanges("x.go", "y.go")}
		modelSpy := &doubles.SpyModelRepository{
			Messages: map[string]entities.CommitMessage{
				"x.go": {Type: "fix", Subject: "handle nil", Formatted: "fix: handle nil"},
			},
		}
		cmd := newCommitFixture(gitSpy, modelSpy)

		// when
		err := cmd.Execute(context.Background(), validSettings(), commands.CommitOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"x.go", "y.go"}, gitSpy.CommittedPaths)
		assert.Equal(t, "fix: handle nil", gitSpy.CommittedMessages[0])
		assert.Equal(t, 1, gitSpy.UnstageCalls)
		assert.Empty(t, gitSpy.PushedBranches)
	})

	t.Run("should push the current branch when asked", func(t *testing.T) {
		t.Parallel()

		// given
		gitSpy := &doubles.SpyGitRepository{
			Staged: stagedChanges("x.go"),
			Branch: "feature/work",
		}
		cmd := newCommitFixture(gitSpy, &doubles.SpyModelRepository{})

		// when
		err := cmd.Execute(context.Background(), validSettings(), commands.CommitOptions{Push: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"feature/work"}, gitSpy.PushedBranches)
	})

	t.Run("should not require a GitHub token", func(t *testing.T) {
		t.Parallel()

		// given
		gitSpy := &doubles.SpyGitRepository{Staged: stagedChanges("x.go")}
		cmd := newCommitFixture(gitSpy, &doubles.SpyModelRepository{})
		settings := &entities.Settings{OpenRouterAPIKey: "sk-or-v1-abcdef"}

		// when
		err := cmd.Execute(context.Background(), settings, commands.CommitOptions{})

		// then
		require.NoError(t, err)
		assert.Len(t, gitSpy.CommittedPaths, 1)
	})

	t.Run("should fail without staged files before any model call", func(t *testing.T) {
		t.Parallel()

		// given
		gitSpy := &doubles.SpyGitRepository{}
		modelSpy := &doubles.SpyModelRepository{}
		cmd := newCommitFixture(gitSpy, modelSpy)

		// when
		err := cmd.Execute(context.Background(), validSettings(), commands.CommitOptions{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no staged changes")
		assert.Zero(t, modelSpy.MessageCalls)
	})
}
