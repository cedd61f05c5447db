package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitforge/internal/domain/repositories"
)

// collectStagedMessages lists the staged files, diffs each one, and fans
// out the message generation. Aborts before any model call when nothing
// is staged. Message order matches the staged-file listing order.
func collectStagedMessages(
	ctx context.Context,
	git domainRepos.GitRepository,
	model domainRepos.ModelRepository,
) ([]entities.FileChange, []entities.CommitMessage, error) {
	changes, err := git.StagedFiles(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(changes) == 0 {
		return nil, nil, errors.New("no staged changes found; stage files with 'git add' first")
	}
	logger.Infof("Found %d staged file(s)", len(changes))

	diffs := make([]string, len(changes))
	for index, change := range changes {
		diff, diffErr := git.Diff(ctx, change)
		if diffErr != nil {
			return nil, nil, diffErr
		}
		diffs[index] = diff
	}

	messages, err := model.GenerateCommitMessages(ctx, changes, diffs)
	if err != nil {
		return nil, nil, err
	}

	return changes, messages, nil
}

// commitInOrder unstages everything, then stages and commits each file
// individually in the original listing order.
func commitInOrder(
	ctx context.Context,
	git domainRepos.GitRepository,
	changes []entities.FileChange,
	messages []entities.CommitMessage,
) ([]string, error) {
	if err := git.UnstageAll(ctx); err != nil {
		logger.Debugf("unstage-all failed (ignored): %v", err)
	}

	hashes := make([]string, 0, len(changes))
	for index, change := range changes {
		hash, err := git.Commit(ctx, change.Path, messages[index].Formatted)
		if err != nil {
			return nil, err
		}
		logger.Infof("Created commit %.7s: %s", hash, messages[index].Formatted)
		hashes = append(hashes, hash)
	}
	return hashes, nil
}
