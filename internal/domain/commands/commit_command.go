package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/commitforge/internal/infrastructure/repositories"
)

// Commit is the interface for the commit-only command.
type Commit interface {
	Execute(ctx context.Context, stored *entities.Settings, opts CommitOptions) error
}

// CommitOptions holds the runtime options of the commit command.
type CommitOptions struct {
	Push bool
}

// CommitCommand generates per-file commits on the current branch
// without touching branches or pull requests. Optionally pushes the
// current branch afterwards.
type CommitCommand struct {
	git      domainRepos.GitRepository
	newModel infraRepos.ModelFactory
}

// NewCommitCommand creates a new CommitCommand.
func NewCommitCommand(
	git domainRepos.GitRepository,
	newModel infraRepos.ModelFactory,
) *CommitCommand {
	return &CommitCommand{
		git:      git,
		newModel: newModel,
	}
}

// Execute generates messages for the staged files and commits each one
// in the original listing order.
func (it *CommitCommand) Execute(
	ctx context.Context,
	stored *entities.Settings,
	opts CommitOptions,
) error {
	working, err := buildWorkingSettings(ctx, it.git, stored, false)
	if err != nil {
		return err
	}

	model := it.newModel(working.OpenRouterAPIKey, working.Model, working.MaxConcurrency)

	changes, messages, err := collectStagedMessages(ctx, it.git, model)
	if err != nil {
		return err
	}

	if _, err = commitInOrder(ctx, it.git, changes, messages); err != nil {
		return err
	}

	if !opts.Push {
		return nil
	}

	branch, err := it.git.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if err = it.git.Push(ctx, branch); err != nil {
		return err
	}
	logger.Infof("Pushed branch %q", branch)
	return nil
}
