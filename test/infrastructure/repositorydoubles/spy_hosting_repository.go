//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	"github.com/rios0rios0/commitforge/internal/domain/repositories"
)

// SpyHostingRepository implements repositories.HostingRepository as a configurable spy.
type SpyHostingRepository struct {
	// --- FindPullRequest ---
	ExistingPR    *entities.PullRequest
	FoundBranches []string

	// --- CreatePullRequest ---
	CreatedInputs []entities.PullRequestInput
	CreatePRErr   error

	// --- UpdatePullRequest ---
	UpdatedNumbers []int
	UpdatedInputs  []entities.PullRequestInput
	UpdatePRErr    error

	// --- TestToken ---
	TokenErr error

	// --- GetRepository ---
	Repository *entities.Repository
	GetRepoErr error
}

var _ repositories.HostingRepository = (*SpyHostingRepository)(nil)

func (h *SpyHostingRepository) CreatePullRequest(
	_ context.Context, input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	if h.CreatePRErr != nil {
		return nil, h.CreatePRErr
	}
	h.CreatedInputs = append(h.CreatedInputs, input)
	return &entities.PullRequest{
		ID:     1,
		Title:  input.Title,
		URL:    "https://example.com/pr/1",
		Status: "open",
	}, nil
}

func (h *SpyHostingRepository) UpdatePullRequest(
	_ context.Context, number int, input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	if h.UpdatePRErr != nil {
		return nil, h.UpdatePRErr
	}
	h.UpdatedNumbers = append(h.UpdatedNumbers, number)
	h.UpdatedInputs = append(h.UpdatedInputs, input)
	return &entities.PullRequest{
		ID:     number,
		Title:  input.Title,
		URL:    "https://example.com/pr/1",
		Status: "open",
	}, nil
}

func (h *SpyHostingRepository) FindPullRequest(
	_ context.Context, headBranch string,
) (*entities.PullRequest, error) {
	h.FoundBranches = append(h.FoundBranches, headBranch)
	return h.ExistingPR, nil
}

func (h *SpyHostingRepository) TestToken(_ context.Context) error {
	return h.TokenErr
}

func (h *SpyHostingRepository) GetRepository(_ context.Context) (*entities.Repository, error) {
	if h.GetRepoErr != nil {
		return nil, h.GetRepoErr
	}
	return h.Repository, nil
}
