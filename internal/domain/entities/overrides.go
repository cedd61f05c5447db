package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectOverrides is an optional per-repository configuration file
// (.commitforge.yaml) overriding the user-level defaults. Credentials
// never live here.
type ProjectOverrides struct {
	DefaultModel   string `yaml:"defaultModel"`
	BaseBranch     string `yaml:"baseBranch"`
	MaxConcurrency int    `yaml:"maxConcurrency"`
}

var overrideFileNames = []string{
	".commitforge.yaml",
	".commitforge.yml",
}

// FindProjectOverrides looks for an override file in dir and parses it.
// Returns nil when no file exists.
func FindProjectOverrides(dir string) (*ProjectOverrides, error) {
	for _, name := range overrideFileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}

		var overrides ProjectOverrides
		if unmarshalErr := yaml.Unmarshal(data, &overrides); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", path, unmarshalErr)
		}
		return &overrides, nil
	}
	return nil, nil //nolint:nilnil // absence of a file is not an error
}
