package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pomsync/domain"
	testdoubles "github.com/rios0rios0/pomsync/test"
)

func TestInterfaceCompliance(t *testing.T) {
	t.Parallel()

	t.Run("should satisfy DescriptorRepository interface with a dummy", func(t *testing.T) {
		t.Parallel()

		// given
		var descriptors domain.DescriptorRepository = &testdoubles.DummyDescriptorRepository{}

		// then
		assert.NotNil(t, descriptors)
		assert.Implements(t, (*domain.DescriptorRepository)(nil), descriptors)
	})

	t.Run("should satisfy RegistryRepository interface with a dummy", func(t *testing.T) {
		t.Parallel()

		// given
		var registries domain.RegistryRepository = &testdoubles.DummyRegistryRepository{}

		// then
		assert.NotNil(t, registries)
		assert.Implements(t, (*domain.RegistryRepository)(nil), registries)
	})

	t.Run("should satisfy DescriptorRepository interface with a spy", func(t *testing.T) {
		t.Parallel()

		// given
		var descriptors domain.DescriptorRepository = &testdoubles.SpyDescriptorRepository{}

		// then
		assert.Implements(t, (*domain.DescriptorRepository)(nil), descriptors)
	})
}

func TestParseScopes(t *testing.T) {
	t.Parallel()

	t.Run("should return defaults for an empty list", func(t *testing.T) {
		t.Parallel()

		// when
		scopes, err := domain.ParseScopes(nil)

		// then
		require.NoError(t, err)
		assert.True(t, scopes[domain.ScopeProject])
		assert.True(t, scopes[domain.ScopePlugin])
		assert.True(t, scopes[domain.ScopePluginManagement])
		assert.False(t, scopes[domain.ScopeDependency])
		assert.False(t, scopes[domain.ScopeDependencyManagement])
	})

	t.Run("should parse explicit scope names", func(t *testing.T) {
		t.Parallel()

		// when
		scopes, err := domain.ParseScopes([]string{"dependencies", "dependency-management"})

		// then
		require.NoError(t, err)
		assert.True(t, scopes[domain.ScopeDependency])
		assert.True(t, scopes[domain.ScopeDependencyManagement])
		assert.False(t, scopes[domain.ScopeProject])
	})

	t.Run("should trim whitespace around names", func(t *testing.T) {
		t.Parallel()

		// when
		scopes, err := domain.ParseScopes([]string{" project "})

		// then
		require.NoError(t, err)
		assert.True(t, scopes[domain.ScopeProject])
	})

	t.Run("should reject an unknown scope", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := domain.ParseScopes([]string{"modules"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "modules")
	})
}

func TestVersionedNode(t *testing.T) {
	t.Parallel()

	t.Run("should distinguish absent from indirect versions", func(t *testing.T) {
		t.Parallel()

		// given
		absent := domain.VersionedNode{}
		indirect := domain.VersionedNode{Version: "${lib.version}"}
		literal := domain.VersionedNode{Version: "2.1.0"}

		// then
		assert.False(t, absent.HasVersion())
		assert.False(t, absent.IsIndirect())
		assert.True(t, indirect.HasVersion())
		assert.True(t, indirect.IsIndirect())
		assert.True(t, literal.HasVersion())
		assert.False(t, literal.IsIndirect())
	})
}

func TestCatalogManagedVersions(t *testing.T) {
	t.Parallel()

	t.Run("should index managed plugin versions by artifactId", func(t *testing.T) {
		t.Parallel()

		// given
		catalog := domain.Catalog{
			{
				Coordinate: domain.Coordinate{ArtifactID: "maven-surefire-plugin", Scope: domain.ScopePluginManagement},
				Version:    "2.19.1",
			},
			{
				Coordinate: domain.Coordinate{ArtifactID: "maven-compiler-plugin", Scope: domain.ScopePlugin},
				Version:    "3.5.1",
			},
		}

		// when
		managed := catalog.ManagedVersions(domain.ScopePluginManagement)

		// then
		assert.Equal(t, map[string]string{"maven-surefire-plugin": "2.19.1"}, managed)
	})
}

func TestReportCount(t *testing.T) {
	t.Parallel()

	t.Run("should count entries by action", func(t *testing.T) {
		t.Parallel()

		// given
		report := domain.Report{
			{Action: domain.ActionUpdated},
			{Action: domain.ActionUpdated},
			{Action: domain.ActionUnchanged},
		}

		// then
		assert.Equal(t, 2, report.Count(domain.ActionUpdated))
		assert.Equal(t, 1, report.Count(domain.ActionUnchanged))
		assert.Equal(t, 0, report.Count(domain.ActionSkippedIndirect))
	})
}
