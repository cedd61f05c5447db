package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	"github.com/rios0rios0/commitforge/internal/domain/repositories"
)

const providerName = "github"

// HostingRepository implements repositories.HostingRepository for
// GitHub, bound to one owner/repository pair.
type HostingRepository struct {
	client *gh.Client
	owner  string
	name   string
}

// NewHostingRepository creates a GitHub client for the given token and
// detected repository.
func NewHostingRepository(token string, repo entities.Repository) repositories.HostingRepository {
	client := gh.NewClient(nil).WithAuthToken(token)
	return &HostingRepository{
		client: client,
		owner:  repo.Organization,
		name:   repo.Name,
	}
}

// newWithClient is used by tests to point at a fake server.
func newWithClient(client *gh.Client, owner, name string) *HostingRepository {
	return &HostingRepository{client: client, owner: owner, name: name}
}

func (it *HostingRepository) CreatePullRequest(
	ctx context.Context,
	input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	head := strings.TrimPrefix(input.SourceBranch, "refs/heads/")
	base := strings.TrimPrefix(input.TargetBranch, "refs/heads/")

	maintainerCanModify := true
	pr, _, err := it.client.PullRequests.Create(
		ctx, it.owner, it.name,
		&gh.NewPullRequest{
			Title:               &input.Title,
			Head:                &head,
			Base:                &base,
			Body:                &input.Description,
			MaintainerCanModify: &maintainerCanModify,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	return toPullRequest(pr), nil
}

func (it *HostingRepository) UpdatePullRequest(
	ctx context.Context,
	number int,
	input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	pr, _, err := it.client.PullRequests.Edit(
		ctx, it.owner, it.name, number,
		&gh.PullRequest{
			Title: &input.Title,
			Body:  &input.Description,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update pull request #%d: %w", number, err)
	}

	return toPullRequest(pr), nil
}

// FindPullRequest returns the first open PR whose head is headBranch.
// Lookup failures are logged and reported as "no PR found" so the
// caller falls through to creation.
func (it *HostingRepository) FindPullRequest(
	ctx context.Context,
	headBranch string,
) (*entities.PullRequest, error) {
	prs, _, err := it.client.PullRequests.List(
		ctx, it.owner, it.name,
		&gh.PullRequestListOptions{
			Head:  it.owner + ":" + strings.TrimPrefix(headBranch, "refs/heads/"),
			State: "open",
		},
	)
	if err != nil {
		logger.Debugf("pull request lookup failed, assuming none exists: %v", err)
		return nil, nil //nolint:nilnil // lookup errors degrade to "not found"
	}
	if len(prs) == 0 {
		return nil, nil //nolint:nilnil // no open PR for this head
	}

	return toPullRequest(prs[0]), nil
}

// TestToken validates the configured token with a cheap API call.
func (it *HostingRepository) TestToken(ctx context.Context) error {
	if _, _, err := it.client.Users.Get(ctx, ""); err != nil {
		return fmt.Errorf("GitHub token validation failed: %w", err)
	}
	return nil
}

// GetRepository fetches the bound repository's metadata.
func (it *HostingRepository) GetRepository(ctx context.Context) (*entities.Repository, error) {
	repo, _, err := it.client.Repositories.Get(ctx, it.owner, it.name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", it.owner, it.name, err)
	}

	return &entities.Repository{
		Name:          repo.GetName(),
		Organization:  it.owner,
		DefaultBranch: repo.GetDefaultBranch(),
		RemoteURL:     repo.GetCloneURL(),
		SSHURL:        repo.GetSSHURL(),
		ProviderName:  providerName,
	}, nil
}

func toPullRequest(pr *gh.PullRequest) *entities.PullRequest {
	return &entities.PullRequest{
		ID:     pr.GetNumber(),
		Title:  pr.GetTitle(),
		URL:    pr.GetHTMLURL(),
		Status: pr.GetState(),
	}
}
