package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/commitforge/internal/domain/commands"
	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// CommitController handles the "commit" subcommand: per-file commits on
// the current branch, without branch or pull request management.
type CommitController struct {
	command commands.Commit
}

// NewCommitController creates a new CommitController.
func NewCommitController(command commands.Commit) *CommitController {
	return &CommitController{command: command}
}

// GetBind returns the Cobra command metadata for the commit controller.
func (it *CommitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "commit",
		Aliases: []string{"c"},
		Short:   "Create one generated commit per staged file",
		Long: `Generate a conventional-commit message for every staged file and
commit each file individually on the current branch.`,
	}
}

// Execute runs the commit command.
func (it *CommitController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	push, _ := cmd.Flags().GetBool("push")

	settings, err := loadStoredSettings()
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, commands.CommitOptions{
		Push: push,
	})
}

// AddFlags adds the commit-specific flags to the given Cobra command.
func (it *CommitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("push", "p", false, "Push the current branch after committing")
}
