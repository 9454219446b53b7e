// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations, no mock frameworks.
package testdoubles

import (
	"github.com/rios0rios0/pomsync/domain"
)

// ---------------------------------------------------------------------------
// SpyDescriptorRepository
// ---------------------------------------------------------------------------

// SpyDescriptorRepository implements domain.DescriptorRepository as a
// configurable spy. Configure the response fields for the methods your test
// exercises, then inspect the call-tracking fields to verify behavior.
type SpyDescriptorRepository struct {
	// --- Load ---
	Descriptor *domain.Descriptor
	LoadErr    error
	// spy: paths that were loaded
	LoadedPaths []string

	// --- Save ---
	SaveErr error
	// spy: calls received
	SaveCalls []SaveCall
}

// SaveCall records one Save invocation.
type SaveCall struct {
	Edits domain.EditSet
	Path  string
}

func (s *SpyDescriptorRepository) Load(path string) (*domain.Descriptor, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Descriptor, nil
}

func (s *SpyDescriptorRepository) Save(
	_ *domain.Descriptor,
	edits domain.EditSet,
	path string,
) error {
	s.SaveCalls = append(s.SaveCalls, SaveCall{Edits: edits, Path: path})
	return s.SaveErr
}

// ---------------------------------------------------------------------------
// SpyRegistryRepository
// ---------------------------------------------------------------------------

// SpyRegistryRepository implements domain.RegistryRepository as a
// configurable spy.
type SpyRegistryRepository struct {
	Registry *domain.VersionRegistry
	LoadErr  error
	// spy: paths that were requested
	LoadedAppPaths []string
	LoadedDepPaths []string
}

func (s *SpyRegistryRepository) Load(appPath, depPath string) (*domain.VersionRegistry, error) {
	s.LoadedAppPaths = append(s.LoadedAppPaths, appPath)
	s.LoadedDepPaths = append(s.LoadedDepPaths, depPath)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Registry, nil
}

// ---------------------------------------------------------------------------
// Dummies
// ---------------------------------------------------------------------------

// DummyDescriptorRepository is a do-nothing domain.DescriptorRepository for
// tests that only need the interface satisfied.
type DummyDescriptorRepository struct{}

func (d *DummyDescriptorRepository) Load(_ string) (*domain.Descriptor, error) {
	return &domain.Descriptor{}, nil
}

func (d *DummyDescriptorRepository) Save(_ *domain.Descriptor, _ domain.EditSet, _ string) error {
	return nil
}

// DummyRegistryRepository is a do-nothing domain.RegistryRepository.
type DummyRegistryRepository struct{}

func (d *DummyRegistryRepository) Load(_, _ string) (*domain.VersionRegistry, error) {
	return &domain.VersionRegistry{}, nil
}
