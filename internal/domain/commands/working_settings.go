package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitforge/internal/domain/repositories"
)

// buildWorkingSettings validates the stored settings, detects the
// current repository, merges project overrides, and returns the
// effective configuration for this invocation.
func buildWorkingSettings(
	ctx context.Context,
	git domainRepos.GitRepository,
	stored *entities.Settings,
	requireGitHub bool,
) (*entities.WorkingSettings, error) {
	if err := stored.Validate(requireGitHub); err != nil {
		return nil, err
	}

	if !git.IsRepository(ctx) {
		return nil, errors.New("not a git repository (or any of the parent directories)")
	}

	repository, err := git.DetectRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to detect repository: %w", err)
	}

	overrides, err := entities.FindProjectOverrides(".")
	if err != nil {
		return nil, err
	}

	return entities.NewWorkingSettings(stored, overrides, repository), nil
}
