package entities

// DefaultBaseBranch is the branch pull requests target unless
// overridden by a flag or a project override file.
const DefaultBaseBranch = "main"

const (
	minConcurrency = 1
	maxConcurrency = 10
)

// WorkingSettings is the effective configuration of one invocation:
// stored settings merged with project overrides, the detected
// repository, and hard-coded defaults. Built once per run and threaded
// through the commands explicitly.
type WorkingSettings struct {
	OpenRouterAPIKey string
	GitHubToken      string
	Model            string
	MaxConcurrency   int
	BaseBranch       string
	Repository       Repository
}

// NewWorkingSettings merges the stored settings with optional project
// overrides and the detected repository. overrides may be nil.
func NewWorkingSettings(
	stored *Settings,
	overrides *ProjectOverrides,
	repository Repository,
) *WorkingSettings {
	working := &WorkingSettings{
		OpenRouterAPIKey: stored.OpenRouterAPIKey,
		GitHubToken:      stored.GitHubToken,
		Model:            stored.DefaultModel,
		MaxConcurrency:   stored.MaxConcurrency,
		BaseBranch:       DefaultBaseBranch,
		Repository:       repository,
	}

	if overrides != nil {
		if overrides.DefaultModel != "" {
			working.Model = overrides.DefaultModel
		}
		if overrides.BaseBranch != "" {
			working.BaseBranch = overrides.BaseBranch
		}
		if overrides.MaxConcurrency != 0 {
			working.MaxConcurrency = overrides.MaxConcurrency
		}
	}

	if working.Model == "" {
		working.Model = DefaultModel
	}
	if working.MaxConcurrency == 0 {
		working.MaxConcurrency = DefaultMaxConcurrency
	}
	working.MaxConcurrency = clampConcurrency(working.MaxConcurrency)

	return working
}

func clampConcurrency(width int) int {
	if width < minConcurrency {
		return minConcurrency
	}
	if width > maxConcurrency {
		return maxConcurrency
	}
	return width
}
