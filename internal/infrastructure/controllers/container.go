package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewWorkflowController); err != nil {
		return err
	}
	if err := container.Provide(NewCommitController); err != nil {
		return err
	}
	if err := container.Provide(NewConfigController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	workflowController *WorkflowController,
	commitController *CommitController,
	configController *ConfigController,
) *[]entities.Controller {
	return &[]entities.Controller{
		workflowController,
		commitController,
		configController,
	}
}

// loadStoredSettings reads the user-level settings file once per
// invocation; a missing file yields empty settings.
func loadStoredSettings() (*entities.Settings, error) {
	path, err := entities.DefaultSettingsPath()
	if err != nil {
		return nil, err
	}
	return entities.LoadSettings(path)
}
