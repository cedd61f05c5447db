package repositories

import (
	"context"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// GitRepository wraps the local git working tree. Every mutation is
// serial; a non-zero git exit surfaces as a wrapped error.
type GitRepository interface {
	// IsRepository reports whether the working directory is inside a
	// git working tree.
	IsRepository(ctx context.Context) bool

	// DetectRepository derives the GitHub owner/name pair from the
	// "origin" remote URL.
	DetectRepository(ctx context.Context) (entities.Repository, error)

	// StagedFiles lists the staged changes; empty when nothing is staged.
	StagedFiles(ctx context.Context) ([]entities.FileChange, error)

	// Diff returns the unified diff of one staged file, or a deletion
	// sentinel for deleted files.
	Diff(ctx context.Context, change entities.FileChange) (string, error)

	CurrentBranch(ctx context.Context) (string, error)
	BranchExists(ctx context.Context, name string) (bool, error)

	// CreateBranch creates the branch and switches the working tree to it.
	CreateBranch(ctx context.Context, name string) error

	// UnstageAll resets the index. Callers tolerate failure.
	UnstageAll(ctx context.Context) error

	// Commit stages exactly one path and commits it with the given
	// message, returning the new commit hash.
	Commit(ctx context.Context, path, message string) (string, error)

	// Push pushes the branch and sets its upstream.
	Push(ctx context.Context, branch string) error

	// CommitsBetween enumerates the commits reachable from HEAD but not
	// from base, each annotated with its changed files.
	CommitsBetween(ctx context.Context, base string) ([]entities.CommitRecord, error)
}
