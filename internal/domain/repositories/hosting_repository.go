package repositories

import (
	"context"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// HostingRepository manages pull requests on a code-hosting service,
// bound to one owner/repository pair for the process lifetime.
type HostingRepository interface {
	CreatePullRequest(
		ctx context.Context,
		input entities.PullRequestInput,
	) (*entities.PullRequest, error)

	UpdatePullRequest(
		ctx context.Context,
		number int,
		input entities.PullRequestInput,
	) (*entities.PullRequest, error)

	// FindPullRequest returns the first open pull request whose head is
	// the given branch, or nil when none exists. Lookup failures are
	// treated as "no PR found" so callers fall through to creation.
	FindPullRequest(ctx context.Context, headBranch string) (*entities.PullRequest, error)

	// TestToken validates the configured token with a cheap API call.
	TestToken(ctx context.Context) error

	// GetRepository fetches the bound repository's metadata.
	GetRepository(ctx context.Context) (*entities.Repository, error)
}
