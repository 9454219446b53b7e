package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pomsync/application"
	"github.com/rios0rios0/pomsync/config"
	"github.com/rios0rios0/pomsync/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	appRegistryFlag string
	depRegistryFlag string
	scopesFlag      []string
	outputFlag      string
	reportFlag      string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var syncCmd = &cobra.Command{
	Use:   "sync <pom>",
	Short: "Reconcile a POM against the version registries",
	Long: `Reconcile the declared versions in a POM against the application and
dependency/plugin registries, rewriting only the version text of matched
declarations.

By default the project identity and plugin scopes are processed; the
dependency scopes are opt-in via --scopes. The updated document is written
back in place unless --output names another path.`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	syncCmd.Flags().StringVar(&appRegistryFlag, "apps", "",
		"Path to the application registry (JSON artifactId -> version)")
	syncCmd.Flags().StringVar(&depRegistryFlag, "deps", "",
		"Path to the dependency/plugin registry (JSON artifactId -> version)")
	syncCmd.Flags().StringSliceVar(&scopesFlag, "scopes", nil,
		"Scopes to reconcile (project, dependencies, dependency-management, plugins, plugin-management)")
	syncCmd.Flags().StringVar(&outputFlag, "output", "",
		"Write the updated descriptor to this path instead of in place")
	syncCmd.Flags().StringVar(&reportFlag, "report", "",
		"Report format: text or json (default from config, text otherwise)")
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, reportFormat, err := buildSyncOptions(cfg, args[0])
	if err != nil {
		return err
	}

	service := injectSyncService()
	report, err := service.Run(ctx, opts)
	if err != nil {
		return err
	}

	if reportFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if encodeErr := encoder.Encode(report); encodeErr != nil {
			return fmt.Errorf("failed to encode report: %w", encodeErr)
		}
	}
	return nil
}

// loadConfig resolves the optional config file: an explicit --config must
// exist, an auto-detected one is used when present, and absence of both is
// fine (flags alone can drive a run).
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		logger.Debugf("Using config file: %s", configPath)
		return cfg, nil
	}

	found, err := config.FindConfigFile()
	if err != nil {
		return &config.Config{}, nil //nolint:nilerr // no config file is a valid setup
	}

	cfg, loadErr := config.Load(found)
	if loadErr != nil {
		return nil, fmt.Errorf("failed to load config: %w", loadErr)
	}
	logger.Debugf("Using config file: %s", found)
	return cfg, nil
}

func buildSyncOptions(
	cfg *config.Config,
	descriptorPath string,
) (application.SyncOptions, string, error) {
	appRegistry := firstNonEmpty(appRegistryFlag, cfg.Registries.Applications)
	depRegistry := firstNonEmpty(depRegistryFlag, cfg.Registries.Dependencies)
	if appRegistry == "" || depRegistry == "" {
		return application.SyncOptions{}, "",
			fmt.Errorf("both registries are required: set --apps and --deps or configure them")
	}

	scopeNames := scopesFlag
	if len(scopeNames) == 0 {
		scopeNames = cfg.Scopes
	}
	scopes, err := domain.ParseScopes(scopeNames)
	if err != nil {
		return application.SyncOptions{}, "", err
	}

	reportFormat := firstNonEmpty(reportFlag, cfg.Report.Format, "text")
	if reportFormat != "text" && reportFormat != "json" {
		return application.SyncOptions{}, "",
			fmt.Errorf("invalid report format %q (expected text or json)", reportFormat)
	}

	return application.SyncOptions{
		DescriptorPath: descriptorPath,
		AppRegistry:    appRegistry,
		DepRegistry:    depRegistry,
		OutputPath:     firstNonEmpty(outputFlag, cfg.Output),
		Scopes:         scopes,
		DryRun:         dryRun,
		Verbose:        verbose,
	}, reportFormat, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
