package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/commitforge/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/commitforge/internal/infrastructure/repositories/git"
	ghRepo "github.com/rios0rios0/commitforge/internal/infrastructure/repositories/github"
	orRepo "github.com/rios0rios0/commitforge/internal/infrastructure/repositories/openrouter"
)

// ModelFactory builds a model client from the effective configuration.
// Credentials are only known once the settings are loaded, so commands
// receive a factory rather than a ready instance.
type ModelFactory func(apiKey, model string, concurrency int) domainRepos.ModelRepository

// HostingFactory builds a hosting client bound to the detected repository.
type HostingFactory func(token string, repo entities.Repository) domainRepos.HostingRepository

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.GitRepository {
		return gitRepo.NewGitRepository(".")
	}); err != nil {
		return err
	}

	if err := container.Provide(func() ModelFactory {
		return orRepo.NewModelRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(func() HostingFactory {
		return ghRepo.NewHostingRepository
	}); err != nil {
		return err
	}

	return nil
}
