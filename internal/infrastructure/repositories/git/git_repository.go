package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	"github.com/rios0rios0/commitforge/internal/domain/repositories"
)

const originRemote = "origin"

// GitRepository shells out to the local git binary for all repository
// reads and writes.
type GitRepository struct {
	workDir string
}

// NewGitRepository creates an adapter bound to the given working directory.
func NewGitRepository(workDir string) repositories.GitRepository {
	return &GitRepository{workDir: workDir}
}

// IsRepository reports whether workDir is inside a git working tree.
func (it *GitRepository) IsRepository(ctx context.Context) bool {
	_, err := it.run(ctx, "rev-parse", "--git-dir")
	return err == nil
}

// DetectRepository reads the "origin" remote URL through go-git and
// parses the GitHub owner/name pair out of it.
func (it *GitRepository) DetectRepository(_ context.Context) (entities.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(it.workDir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return entities.Repository{}, fmt.Errorf("failed to open repository: %w", err)
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		return entities.Repository{}, fmt.Errorf("no %q remote configured: %w", originRemote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return entities.Repository{}, fmt.Errorf("remote %q has no URL", originRemote)
	}

	owner, name, parseErr := entities.ParseRemoteURL(urls[0])
	if parseErr != nil {
		return entities.Repository{}, parseErr
	}

	return entities.Repository{
		Name:         name,
		Organization: owner,
		RemoteURL:    urls[0],
		ProviderName: "github",
	}, nil
}

// StagedFiles lists the staged changes from `git diff --cached --name-status`.
func (it *GitRepository) StagedFiles(ctx context.Context) ([]entities.FileChange, error) {
	output, err := it.run(ctx, "diff", "--cached", "--name-status")
	if err != nil {
		return nil, err
	}
	return parseNameStatus(output), nil
}

// Diff returns the staged unified diff of one file. Deleted files get a
// fixed sentinel instead of a diff.
func (it *GitRepository) Diff(ctx context.Context, change entities.FileChange) (string, error) {
	if change.Type == entities.ChangeDeleted {
		return deletionSentinel(change.Path), nil
	}
	return it.run(ctx, "diff", "--cached", "--", change.Path)
}

func (it *GitRepository) CurrentBranch(ctx context.Context) (string, error) {
	return it.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

func (it *GitRepository) BranchExists(ctx context.Context, name string) (bool, error) {
	_, err := it.run(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	if err != nil {
		return false, nil //nolint:nilerr // non-zero exit means the branch is absent
	}
	return true, nil
}

// CreateBranch creates the branch and switches the working tree to it.
func (it *GitRepository) CreateBranch(ctx context.Context, name string) error {
	_, err := it.run(ctx, "checkout", "-b", name)
	return err
}

// UnstageAll resets the index. Best-effort: callers tolerate failure.
func (it *GitRepository) UnstageAll(ctx context.Context) error {
	_, err := it.run(ctx, "reset", "HEAD")
	return err
}

// Commit stages exactly one path and commits it, returning the new hash.
func (it *GitRepository) Commit(ctx context.Context, path, message string) (string, error) {
	if _, err := it.run(ctx, "add", "--", path); err != nil {
		return "", err
	}
	if _, err := it.run(ctx, "commit", "-m", sanitizeMessage(message)); err != nil {
		return "", err
	}
	return it.run(ctx, "rev-parse", "HEAD")
}

// Push pushes the branch and sets its upstream.
func (it *GitRepository) Push(ctx context.Context, branch string) error {
	_, err := it.run(ctx, "push", "--set-upstream", originRemote, branch)
	return err
}

// CommitsBetween enumerates base..HEAD, annotating each commit with its
// changed files. One extra git invocation per commit.
func (it *GitRepository) CommitsBetween(ctx context.Context, base string) ([]entities.CommitRecord, error) {
	output, err := it.run(ctx, "log", "--pretty=format:%H%x1f%s", base+"..HEAD")
	if err != nil {
		return nil, err
	}

	var records []entities.CommitRecord
	for _, line := range strings.Split(output, "\n") {
		hash, message, ok := strings.Cut(strings.TrimSpace(line), "\x1f")
		if !ok || hash == "" {
			continue
		}

		files, filesErr := it.commitFiles(ctx, hash)
		if filesErr != nil {
			return nil, filesErr
		}

		records = append(records, entities.CommitRecord{
			Hash:    hash,
			Message: message,
			Files:   files,
		})
	}
	return records, nil
}

func (it *GitRepository) commitFiles(ctx context.Context, hash string) ([]string, error) {
	output, err := it.run(ctx, "show", "--name-only", "--pretty=format:", hash)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(output, "\n") {
		if path := strings.TrimSpace(line); path != "" {
			files = append(files, path)
		}
	}
	return files, nil
}

// run executes one git subcommand in the working directory and returns
// its trimmed stdout. A non-zero exit is wrapped with the stderr text.
func (it *GitRepository) run(ctx context.Context, args ...string) (string, error) {
	logger.Debugf("git %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = it.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), detail, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
