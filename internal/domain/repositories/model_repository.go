package repositories

import (
	"context"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// ModelRepository generates commit text through a hosted language model.
// Implementations bound the number of simultaneously in-flight calls.
type ModelRepository interface {
	// GenerateCommitMessage turns one staged change and its diff into a
	// conventional-commit message, falling back to a generic message
	// when the model reply does not match the expected shape.
	GenerateCommitMessage(
		ctx context.Context,
		change entities.FileChange,
		diff string,
	) (entities.CommitMessage, error)

	// GenerateCommitMessages fans out one GenerateCommitMessage call per
	// change. Results come back in input order regardless of completion
	// order; the first failure aborts the whole batch.
	GenerateCommitMessages(
		ctx context.Context,
		changes []entities.FileChange,
		diffs []string,
	) ([]entities.CommitMessage, error)

	// GenerateBranchName summarizes the commit messages into a short
	// kebab-case branch name.
	GenerateBranchName(
		ctx context.Context,
		messages []entities.CommitMessage,
	) (string, error)

	// GeneratePRDescription turns the commit list into a markdown pull
	// request body.
	GeneratePRDescription(
		ctx context.Context,
		branch string,
		commits []entities.CommitRecord,
	) (string, error)
}
