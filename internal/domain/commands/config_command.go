package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// Config is the interface for the configuration command.
type Config interface {
	Execute(ctx context.Context, action, key, value string) error
}

// ConfigCommand manages the persisted user-level settings file.
type ConfigCommand struct {
	// Path overrides the default settings location; empty means
	// ~/.config/commitforge/config.json.
	Path string
	// Input is where the setup action reads answers from.
	Input io.Reader
}

// NewConfigCommand creates a ConfigCommand using the default settings
// path and stdin.
func NewConfigCommand() *ConfigCommand {
	return &ConfigCommand{Input: os.Stdin}
}

// Execute dispatches the list, get, set, and setup actions.
func (it *ConfigCommand) Execute(_ context.Context, action, key, value string) error {
	path := it.Path
	if path == "" {
		resolved, err := entities.DefaultSettingsPath()
		if err != nil {
			return err
		}
		path = resolved
	}

	settings, err := entities.LoadSettings(path)
	if err != nil {
		return err
	}

	switch action {
	case "list":
		return it.list(settings)
	case "get":
		return it.get(settings, key)
	case "set":
		return it.set(settings, path, key, value)
	case "setup":
		return it.setup(settings, path)
	default:
		return fmt.Errorf("unknown config action %q (expected list, get, set, or setup)", action)
	}
}

// list prints every known key with secrets masked.
func (it *ConfigCommand) list(settings *entities.Settings) error {
	listed := settings.List()
	for _, key := range entities.SettingKeys {
		fmt.Printf("%s=%s\n", key, listed[key])
	}
	return nil
}

// get prints the raw value of one key, suitable for scripting.
func (it *ConfigCommand) get(settings *entities.Settings, key string) error {
	if key == "" {
		return fmt.Errorf("--key is required for 'config get'")
	}
	value, err := settings.Get(key)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func (it *ConfigCommand) set(settings *entities.Settings, path, key, value string) error {
	if key == "" {
		return fmt.Errorf("--key is required for 'config set'")
	}
	if err := settings.Set(key, value); err != nil {
		return err
	}
	if err := settings.Save(path); err != nil {
		return err
	}
	logger.Infof("Saved %s", key)
	return nil
}

// setup walks every key over stdin; an empty answer keeps the current
// value.
func (it *ConfigCommand) setup(settings *entities.Settings, path string) error {
	scanner := bufio.NewScanner(it.Input)

	for _, key := range entities.SettingKeys {
		current, _ := settings.Get(key)
		display := current
		if display != "" && keyHoldsSecret(key) {
			display = entities.MaskSecret(display)
		}
		if display == "" {
			display = "unset"
		}

		fmt.Printf("%s [%s]: ", key, display)
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		if err := settings.Set(key, answer); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if err := settings.Save(path); err != nil {
		return err
	}
	logger.Infof("Configuration saved to %s", path)
	return nil
}

func keyHoldsSecret(key string) bool {
	lowered := strings.ToLower(key)
	return strings.Contains(lowered, "token") || strings.Contains(lowered, "key")
}
