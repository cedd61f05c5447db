package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Configuration keys accepted by "config set" and "config get".
const (
	KeyOpenRouterAPIKey = "openRouterApiKey"
	KeyGitHubToken      = "githubToken"
	KeyDefaultModel     = "defaultModel"
	KeyMaxConcurrency   = "maxConcurrency"
)

const (
	// DefaultModel is the OpenRouter model identifier used when none is
	// configured.
	DefaultModel = "anthropic/claude-3.5-sonnet"
	// DefaultMaxConcurrency caps simultaneous model calls.
	DefaultMaxConcurrency = 3

	settingsDirPerm  = 0o700
	settingsFilePerm = 0o600
	maskThreshold    = 8
	maskEdge         = 4
)

// SettingKeys lists every known configuration key in display order.
var SettingKeys = []string{
	KeyOpenRouterAPIKey,
	KeyGitHubToken,
	KeyDefaultModel,
	KeyMaxConcurrency,
}

// Settings is the persisted user-level configuration. Unknown JSON keys
// found in the file are preserved across a load/save cycle.
type Settings struct {
	OpenRouterAPIKey string `json:"openRouterApiKey,omitempty"`
	GitHubToken      string `json:"githubToken,omitempty"`
	DefaultModel     string `json:"defaultModel,omitempty"`
	MaxConcurrency   int    `json:"maxConcurrency,omitempty"`

	extra map[string]json.RawMessage
}

// DefaultSettingsPath returns the location of the user-level settings
// file, created lazily on first save.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "commitforge", "config.json"), nil
}

// LoadSettings reads the settings file at path. A missing file yields
// empty settings rather than an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := json.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file %q: %w", path, unmarshalErr)
	}
	return &settings, nil
}

// Save writes the settings to path, creating the parent directory when
// needed. Last write wins; there is no locking.
func (it *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), settingsDirPerm); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if writeErr := os.WriteFile(path, data, settingsFilePerm); writeErr != nil {
		return fmt.Errorf("failed to write settings file %q: %w", path, writeErr)
	}
	return nil
}

// UnmarshalJSON keeps unknown keys aside so they survive a save.
func (it *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings
	var parsed plain
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range SettingKeys {
		delete(raw, key)
	}
	if len(raw) == 0 {
		raw = nil
	}

	*it = Settings(parsed)
	it.extra = raw
	return nil
}

// MarshalJSON merges the known fields with any preserved unknown keys.
func (it Settings) MarshalJSON() ([]byte, error) {
	merged := make(map[string]json.RawMessage, len(it.extra)+len(SettingKeys))
	for key, value := range it.extra {
		merged[key] = value
	}

	type plain Settings
	known, err := json.Marshal(plain(it))
	if err != nil {
		return nil, err
	}
	var knownMap map[string]json.RawMessage
	if unmarshalErr := json.Unmarshal(known, &knownMap); unmarshalErr != nil {
		return nil, unmarshalErr
	}
	for key, value := range knownMap {
		merged[key] = value
	}

	return json.Marshal(merged)
}

// Set assigns a known configuration key from its string representation.
func (it *Settings) Set(key, value string) error {
	switch key {
	case KeyOpenRouterAPIKey:
		it.OpenRouterAPIKey = value
	case KeyGitHubToken:
		it.GitHubToken = value
	case KeyDefaultModel:
		it.DefaultModel = value
	case KeyMaxConcurrency:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", KeyMaxConcurrency, value)
		}
		it.MaxConcurrency = parsed
	default:
		return fmt.Errorf("unknown configuration key %q (known: %s)",
			key, strings.Join(SettingKeys, ", "))
	}
	return nil
}

// Get returns the raw string value of a known configuration key.
func (it *Settings) Get(key string) (string, error) {
	switch key {
	case KeyOpenRouterAPIKey:
		return it.OpenRouterAPIKey, nil
	case KeyGitHubToken:
		return it.GitHubToken, nil
	case KeyDefaultModel:
		return it.DefaultModel, nil
	case KeyMaxConcurrency:
		if it.MaxConcurrency == 0 {
			return "", nil
		}
		return strconv.Itoa(it.MaxConcurrency), nil
	default:
		return "", fmt.Errorf("unknown configuration key %q", key)
	}
}

// List returns every known key with secrets masked for display.
func (it *Settings) List() map[string]string {
	listed := make(map[string]string, len(SettingKeys))
	for _, key := range SettingKeys {
		value, _ := it.Get(key)
		if isSecretKey(key) {
			value = MaskSecret(value)
		}
		listed[key] = value
	}
	return listed
}

// Validate checks that the secrets needed by a command are present.
// The GitHub token is only required when a pull request will be managed.
func (it *Settings) Validate(requireGitHub bool) error {
	var missing []string
	if it.OpenRouterAPIKey == "" {
		missing = append(missing, KeyOpenRouterAPIKey)
	}
	if requireGitHub && it.GitHubToken == "" {
		missing = append(missing, KeyGitHubToken)
	}
	if len(missing) > 0 {
		return fmt.Errorf(
			"missing required configuration: %s (run 'commitforge config setup')",
			strings.Join(missing, ", "),
		)
	}
	return nil
}

// MaskSecret hides the middle of a secret for display. Values of eight
// characters or fewer are fully masked.
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= maskThreshold {
		return strings.Repeat("*", len(value))
	}
	return value[:maskEdge] + "..." + value[len(value)-maskEdge:]
}

func isSecretKey(key string) bool {
	lowered := strings.ToLower(key)
	return strings.Contains(lowered, "token") || strings.Contains(lowered, "key")
}
