package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/commitforge/internal/domain/commands"
	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// ConfigController handles the "config" subcommand.
type ConfigController struct {
	command commands.Config
}

// NewConfigController creates a new ConfigController.
func NewConfigController(command commands.Config) *ConfigController {
	return &ConfigController{command: command}
}

// GetBind returns the Cobra command metadata for the config controller.
func (it *ConfigController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "config <list|get|set|setup>",
		Short: "Manage the persisted configuration",
		Long: `Manage the configuration stored in ~/.config/commitforge/config.json:
the OpenRouter API key, the GitHub token, the default model, and the
concurrency limit. Secrets are masked when listed.`,
	}
}

// Execute runs the config command.
func (it *ConfigController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	action := "list"
	if len(args) > 0 {
		action = args[0]
	}

	key, _ := cmd.Flags().GetString("key")
	value, _ := cmd.Flags().GetString("value")

	return it.command.Execute(ctx, action, key, value)
}

// AddFlags adds the config-specific flags to the given Cobra command.
func (it *ConfigController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Configuration key")
	cmd.Flags().StringP("value", "v", "", "Configuration value")
}
