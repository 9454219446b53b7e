package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	// Global flags
	configPath string
	dryRun     bool
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "pomsync",
	Short: "Reconcile Maven POM versions against external version registries",
	Long: `A CLI tool that reconciles the declared versions in a Maven project
descriptor (pom.xml) against two version registries: one mapping application
identifiers to a target release version, one mapping dependency and plugin
identifiers to a target version.

Only the version text is rewritten; formatting, ordering, comments and every
unrelated element are preserved byte for byte.`,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false,
		"Show what would be done without making changes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
