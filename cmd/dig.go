package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/pomsync/application"
	"github.com/rios0rios0/pomsync/domain"
	"github.com/rios0rios0/pomsync/infrastructure/pom"
	"github.com/rios0rios0/pomsync/infrastructure/registry"
)

func buildContainer() *dig.Container {
	container := dig.New()

	if err := container.Provide(pom.NewDescriptorRepository); err != nil {
		panic(err)
	}
	if err := container.Provide(registry.NewRegistryRepository); err != nil {
		panic(err)
	}
	if err := container.Provide(application.NewSyncService); err != nil {
		panic(err)
	}

	return container
}

func injectSyncService() *application.SyncService {
	var service *application.SyncService
	if err := buildContainer().Invoke(func(s *application.SyncService) {
		service = s
	}); err != nil {
		panic(err)
	}
	return service
}

func injectDescriptorRepository() domain.DescriptorRepository {
	var descriptors domain.DescriptorRepository
	if err := buildContainer().Invoke(func(d domain.DescriptorRepository) {
		descriptors = d
	}); err != nil {
		panic(err)
	}
	return descriptors
}
