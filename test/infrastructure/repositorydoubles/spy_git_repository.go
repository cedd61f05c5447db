//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	"github.com/rios0rios0/commitforge/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- IsRepository ---
	NotARepository bool

	// --- DetectRepository ---
	Repository entities.Repository
	DetectErr  error

	// --- StagedFiles ---
	Staged    []entities.FileChange
	StagedErr error

	// --- Diff ---
	Diffs   map[string]string
	DiffErr error

	// --- branches ---
	Branch           string
	ExistingBranches map[string]bool
	CreatedBranches  []string
	CreateBranchErr  error

	// --- UnstageAll ---
	UnstageCalls int
	UnstageErr   error

	// --- Commit ---
	CommittedPaths    []string
	CommittedMessages []string
	CommitErr         error

	// --- Push ---
	PushedBranches []string
	PushErr        error

	// --- CommitsBetween ---
	Commits        []entities.CommitRecord
	CommitsErr     error
	CommitsBases   []string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (g *SpyGitRepository) IsRepository(_ context.Context) bool {
	return !g.NotARepository
}

func (g *SpyGitRepository) DetectRepository(_ context.Context) (entities.Repository, error) {
	return g.Repository, g.DetectErr
}

func (g *SpyGitRepository) StagedFiles(_ context.Context) ([]entities.FileChange, error) {
	return g.Staged, g.StagedErr
}

func (g *SpyGitRepository) Diff(_ context.Context, change entities.FileChange) (string, error) {
	if g.DiffErr != nil {
		return "", g.DiffErr
	}
	if g.Diffs != nil {
		if diff, ok := g.Diffs[change.Path]; ok {
			return diff, nil
		}
	}
	return "diff --git a/" + change.Path + " b/" + change.Path, nil
}

func (g *SpyGitRepository) CurrentBranch(_ context.Context) (string, error) {
	if g.Branch == "" {
		return "main", nil
	}
	return g.Branch, nil
}

func (g *SpyGitRepository) BranchExists(_ context.Context, name string) (bool, error) {
	if g.ExistingBranches != nil {
		return g.ExistingBranches[name], nil
	}
	return false, nil
}

func (g *SpyGitRepository) CreateBranch(_ context.Context, name string) error {
	if g.CreateBranchErr != nil {
		return g.CreateBranchErr
	}
	g.CreatedBranches = append(g.CreatedBranches, name)
	return nil
}

func (g *SpyGitRepository) UnstageAll(_ context.Context) error {
	g.UnstageCalls++
	return g.UnstageErr
}

func (g *SpyGitRepository) Commit(_ context.Context, path, message string) (string, error) {
	if g.CommitErr != nil {
		return "", g.CommitErr
	}
	g.CommittedPaths = append(g.CommittedPaths, path)
	g.CommittedMessages = append(g.CommittedMessages, message)
	return fmt.Sprintf("%040d", len(g.CommittedPaths)), nil
}

func (g *SpyGitRepository) Push(_ context.Context, branch string) error {
	if g.PushErr != nil {
		return g.PushErr
	}
	g.PushedBranches = append(g.PushedBranches, branch)
	return nil
}

func (g *SpyGitRepository) CommitsBetween(_ context.Context, base string) ([]entities.CommitRecord, error) {
	g.CommitsBases = append(g.CommitsBases, base)
	return g.Commits, g.CommitsErr
}
