package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/gilesorr/gitchk/internal/domain/repositories"
	"github.com/gilesorr/gitchk/internal/infrastructure/repositories/gitcli"
	"github.com/gilesorr/gitchk/internal/infrastructure/repositories/gogit"
	"github.com/gilesorr/gitchk/internal/infrastructure/repositories/sshagent"
	"github.com/gilesorr/gitchk/internal/infrastructure/repositories/walker"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the comparator registry with both upstream comparator variants
	if err := container.Provide(func() *ComparatorRegistry {
		reg := NewComparatorRegistry(gitcli.ComparatorName)
		reg.Register(gitcli.ComparatorName, func() domainRepos.UpstreamComparator {
			return gitcli.NewPorcelainComparator()
		})
		reg.Register(gogit.ComparatorName, func() domainRepos.UpstreamComparator {
			return gogit.NewStructuredComparator()
		})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(gitcli.NewVCSRepository); err != nil {
		return err
	}
	if err := container.Provide(walker.NewDiscoveryRepository); err != nil {
		return err
	}
	if err := container.Provide(sshagent.NewSessionRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *gitcli.VCSRepository) domainRepos.VCSRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *walker.DiscoveryRepository) domainRepos.DiscoveryRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *sshagent.SessionRepository) domainRepos.SessionRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
