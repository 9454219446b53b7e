package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pomsync/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pomsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoad(t *testing.T) {
	t.Run("should load a full configuration", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
registries:
  applications: ./applications.json
  dependencies: ./dependencies.json
scopes: [project, dependencies]
output: ./out/pom.xml
report:
  format: json
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "./applications.json", cfg.Registries.Applications)
		assert.Equal(t, "./dependencies.json", cfg.Registries.Dependencies)
		assert.Equal(t, []string{"project", "dependencies"}, cfg.Scopes)
		assert.Equal(t, "./out/pom.xml", cfg.Output)
		assert.Equal(t, "json", cfg.Report.Format)
	})

	t.Run("should default the report format to text", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "registries:\n  applications: a.json\n  dependencies: d.json\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Report.Format)
	})

	t.Run("should expand environment variables in registry paths", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("POMSYNC_TEST_DIR", "/srv/registries")
		path := writeConfig(t, `
registries:
  applications: ${POMSYNC_TEST_DIR}/apps.json
  dependencies: ${POMSYNC_TEST_DIR}/deps.json
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/registries/apps.json", cfg.Registries.Applications)
		assert.Equal(t, "/srv/registries/deps.json", cfg.Registries.Dependencies)
	})

	t.Run("should fail on an invalid report format", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "report:\n  format: xml\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "report format")
	})

	t.Run("should fail on unparsable YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "registries: [not a mapping")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))

		// then
		require.Error(t, err)
	})
}

//nolint:tparallel // subtests use t.Setenv which is incompatible with t.Parallel
func TestExpandEnv(t *testing.T) {
	t.Run("should return empty input unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, config.ExpandEnv(""))
	})

	t.Run("should leave plain paths unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "./deps.json", config.ExpandEnv("./deps.json"))
	})

	t.Run("should expand a variable embedded in a path", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("POMSYNC_TEST_HOME", "/home/ci")

		// when / then
		assert.Equal(t, "/home/ci/deps.json", config.ExpandEnv("${POMSYNC_TEST_HOME}/deps.json"))
	})

	t.Run("should expand an unset variable to empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/deps.json", config.ExpandEnv("${POMSYNC_TEST_UNSET_VAR}/deps.json"))
	})
}
