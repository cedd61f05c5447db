package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra metadata a controller exposes.
type ControllerBind struct {
	Use     string
	Aliases []string
	Short   string
	Long    string
}

// Controller is implemented by every CLI controller. Execute returns an
// error so the command boundary can exit non-zero on failure.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
