package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitforge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/commitforge/internal/infrastructure/repositories"
)

// Workflow is the interface for the full branch-and-PR workflow.
type Workflow interface {
	Execute(ctx context.Context, stored *entities.Settings, opts WorkflowOptions) error
}

// WorkflowOptions holds the runtime options of the workflow command.
type WorkflowOptions struct {
	Branch     string
	BaseBranch string
	NoPR       bool
}

// WorkflowCommand sequences the whole flow: staged files -> generated
// messages -> branch -> per-file commits -> push -> pull request. Every
// step is a hard exit point; there is no rollback of earlier steps.
type WorkflowCommand struct {
	git        domainRepos.GitRepository
	newModel   infraRepos.ModelFactory
	newHosting infraRepos.HostingFactory
}

// NewWorkflowCommand creates a new WorkflowCommand.
func NewWorkflowCommand(
	git domainRepos.GitRepository,
	newModel infraRepos.ModelFactory,
	newHosting infraRepos.HostingFactory,
) *WorkflowCommand {
	return &WorkflowCommand{
		git:        git,
		newModel:   newModel,
		newHosting: newHosting,
	}
}

// Execute runs the workflow end to end.
func (it *WorkflowCommand) Execute(
	ctx context.Context,
	stored *entities.Settings,
	opts WorkflowOptions,
) error {
	working, err := buildWorkingSettings(ctx, it.git, stored, !opts.NoPR)
	if err != nil {
		return err
	}

	model := it.newModel(working.OpenRouterAPIKey, working.Model, working.MaxConcurrency)

	changes, messages, err := collectStagedMessages(ctx, it.git, model)
	if err != nil {
		return err
	}

	branch, err := it.resolveBranch(ctx, model, opts.Branch, messages)
	if err != nil {
		return err
	}

	if _, err = commitInOrder(ctx, it.git, changes, messages); err != nil {
		return err
	}

	if err = it.git.Push(ctx, branch); err != nil {
		return err
	}
	logger.Infof("Pushed branch %q", branch)

	if opts.NoPR || working.GitHubToken == "" {
		logger.Info("Skipping pull request creation")
		return nil
	}

	base := opts.BaseBranch
	if base == "" {
		base = working.BaseBranch
	}
	return it.upsertPullRequest(ctx, working, model, branch, base, messages)
}

// resolveBranch uses the caller-supplied name when it does not collide
// with an existing branch, otherwise asks the model for one, then
// creates and switches to it.
func (it *WorkflowCommand) resolveBranch(
	ctx context.Context,
	model domainRepos.ModelRepository,
	supplied string,
	messages []entities.CommitMessage,
) (string, error) {
	branch := supplied
	if branch != "" {
		exists, err := it.git.BranchExists(ctx, branch)
		if err != nil {
			return "", err
		}
		if exists {
			logger.Warnf("Branch %q already exists, generating a name instead", branch)
			branch = ""
		}
	}

	if branch == "" {
		generated, err := model.GenerateBranchName(ctx, messages)
		if err != nil {
			return "", err
		}
		branch = generated
	}

	if err := it.git.CreateBranch(ctx, branch); err != nil {
		return "", err
	}
	logger.Infof("Switched to new branch %q", branch)
	return branch, nil
}

// upsertPullRequest enumerates the new commits, generates a description,
// and updates the existing open PR for the branch or creates a new one.
func (it *WorkflowCommand) upsertPullRequest(
	ctx context.Context,
	working *entities.WorkingSettings,
	model domainRepos.ModelRepository,
	branch, base string,
	messages []entities.CommitMessage,
) error {
	commits, err := it.git.CommitsBetween(ctx, base)
	if err != nil {
		return err
	}

	description, err := model.GeneratePRDescription(ctx, branch, commits)
	if err != nil {
		return err
	}

	input := entities.PullRequestInput{
		SourceBranch: branch,
		TargetBranch: base,
		Title:        messages[0].Formatted,
		Description:  description,
	}

	hosting := it.newHosting(working.GitHubToken, working.Repository)

	existing, err := hosting.FindPullRequest(ctx, branch)
	if err != nil {
		return err
	}

	if existing != nil {
		updated, updateErr := hosting.UpdatePullRequest(ctx, existing.ID, input)
		if updateErr != nil {
			return updateErr
		}
		logger.Infof("Updated pull request #%d: %s", updated.ID, updated.URL)
		return nil
	}

	created, createErr := hosting.CreatePullRequest(ctx, input)
	if createErr != nil {
		return createErr
	}
	logger.Infof("Created pull request #%d: %s", created.ID, created.URL)
	return nil
}
