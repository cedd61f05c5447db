package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewWorkflowCommand); err != nil {
		return err
	}
	if err := container.Provide(NewCommitCommand); err != nil {
		return err
	}
	if err := container.Provide(NewConfigCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *WorkflowCommand) Workflow {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CommitCommand) Commit {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ConfigCommand) Config {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
