package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/commitforge/internal/domain/commands"
	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// WorkflowController handles the "workflow" subcommand: commit, push,
// and open or update a pull request.
type WorkflowController struct {
	command commands.Workflow
}

// NewWorkflowController creates a new WorkflowController.
func NewWorkflowController(command commands.Workflow) *WorkflowController {
	return &WorkflowController{command: command}
}

// GetBind returns the Cobra command metadata for the workflow controller.
func (it *WorkflowController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:     "workflow",
		Aliases: []string{"w"},
		Short:   "Commit staged files, push a branch, and open a pull request",
		Long: `Run the full workflow: generate a conventional-commit message per
staged file, create or switch to a branch, commit each file
individually, push the branch, and create or update the pull request
on GitHub.`,
	}
}

// Execute runs the workflow command.
func (it *WorkflowController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	branch, _ := cmd.Flags().GetString("branch")
	noPR, _ := cmd.Flags().GetBool("no-pr")

	// Only an explicitly set base branch wins over a project override.
	baseBranch := ""
	if cmd.Flags().Changed("base-branch") {
		baseBranch, _ = cmd.Flags().GetString("base-branch")
	} else if cmd.Flags().Changed("bb") {
		baseBranch, _ = cmd.Flags().GetString("bb")
	}

	settings, err := loadStoredSettings()
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, commands.WorkflowOptions{
		Branch:     branch,
		BaseBranch: baseBranch,
		NoPR:       noPR,
	})
}

// AddFlags adds the workflow-specific flags to the given Cobra command.
func (it *WorkflowController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("branch", "b", "", "Branch name (generated from the commit messages when omitted)")
	cmd.Flags().String("base-branch", entities.DefaultBaseBranch, "Base branch the pull request targets")
	cmd.Flags().String("bb", entities.DefaultBaseBranch, "Shorthand for --base-branch")
	_ = cmd.Flags().MarkHidden("bb")
	cmd.Flags().Bool("no-pr", false, "Skip pull request creation")
}
