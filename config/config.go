package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for pomsync. Everything here is a
// default; command-line flags override individual values.
type Config struct {
	Registries RegistryConfig `yaml:"registries"`
	Scopes     []string       `yaml:"scopes"` // Scope names; empty = defaults
	Output     string         `yaml:"output"` // Output path; empty = in place
	Report     ReportConfig   `yaml:"report"`
}

// RegistryConfig holds the paths of the two version registries.
type RegistryConfig struct {
	Applications string `yaml:"applications"`
	Dependencies string `yaml:"dependencies"`
}

// ReportConfig controls how the reconciliation report is emitted.
type ReportConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables in registry and output paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Registries.Applications = ExpandEnv(cfg.Registries.Applications)
	cfg.Registries.Dependencies = ExpandEnv(cfg.Registries.Dependencies)
	cfg.Output = ExpandEnv(cfg.Output)

	if cfg.Report.Format == "" {
		cfg.Report.Format = "text"
	}
	if cfg.Report.Format != "text" && cfg.Report.Format != "json" {
		return nil, fmt.Errorf("invalid report format %q (expected text or json)", cfg.Report.Format)
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".pomsync.yaml",
		".pomsync.yml",
		"pomsync.yaml",
		"pomsync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ExpandEnv replaces ${VAR} references with environment values. Unset
// variables expand to an empty string with a warning, matching shell
// behavior closely enough to diagnose a broken invocation.
func ExpandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
