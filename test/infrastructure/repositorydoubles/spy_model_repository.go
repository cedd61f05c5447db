//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	"github.com/rios0rios0/commitforge/internal/domain/repositories"
)

// SpyModelRepository implements repositories.ModelRepository as a configurable spy.
type SpyModelRepository struct {
	// --- GenerateCommitMessage(s) ---
	Messages    map[string]entities.CommitMessage
	MessagesErr error
	MessageCalls int

	// --- GenerateBranchName ---
	BranchName    string
	BranchNameErr error

	// --- GeneratePRDescription ---
	Description     string
	DescriptionErr  error
	DescribedCommits [][]entities.CommitRecord
}

var _ repositories.ModelRepository = (*SpyModelRepository)(nil)

func (m *SpyModelRepository) GenerateCommitMessage(
	_ context.Context, change entities.FileChange, _ string,
) (entities.CommitMessage, error) {
	m.MessageCalls++
	if m.MessagesErr != nil {
		return entities.CommitMessage{}, m.MessagesErr
	}
	if m.Messages != nil {
		if message, ok := m.Messages[change.Path]; ok {
			return message, nil
		}
	}
	formatted := fmt.Sprintf("chore: update %s", change.Path)
	return entities.CommitMessage{Type: "chore", Subject: "update " + change.Path, Formatted: formatted}, nil
}

func (m *SpyModelRepository) GenerateCommitMessages(
	ctx context.Context, changes []entities.FileChange, diffs []string,
) ([]entities.CommitMessage, error) {
	messages := make([]entities.CommitMessage, 0, len(changes))
	for index, change := range changes {
		message, err := m.GenerateCommitMessage(ctx, change, diffs[index])
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (m *SpyModelRepository) GenerateBranchName(
	_ context.Context, _ []entities.CommitMessage,
) (string, error) {
	if m.BranchNameErr != nil {
		return "", m.BranchNameErr
	}
	if m.BranchName == "" {
		return "feat/generated-branch", nil
	}
	return m.BranchName, nil
}

func (m *SpyModelRepository) GeneratePRDescription(
	_ context.Context, _ string, commits []entities.CommitRecord,
) (string, error) {
	m.DescribedCommits = append(m.DescribedCommits, commits)
	if m.DescriptionErr != nil {
		return "", m.DescriptionErr
	}
	if m.Description == "" {
		return "Automated pull request description.", nil
	}
	return m.Description, nil
}
