// Package registry loads the two external version mappings: the application
// registry (first-party projects) and the dependency/plugin registry. Each
// is a flat JSON object of identifier -> version.
package registry

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/rios0rios0/pomsync/domain"
)

// RegistryRepository implements domain.RegistryRepository over JSON files.
type RegistryRepository struct{}

// NewRegistryRepository creates a filesystem-backed registry repository.
func NewRegistryRepository() domain.RegistryRepository {
	return &RegistryRepository{}
}

// Load reads both registries. Each must be a flat string-to-string object;
// anything else fails with *domain.RegistryError naming the offending file
// and, when known, the offending key.
func (r *RegistryRepository) Load(appPath, depPath string) (*domain.VersionRegistry, error) {
	applications, err := loadMapping(appPath)
	if err != nil {
		return nil, err
	}
	dependencies, err := loadMapping(depPath)
	if err != nil {
		return nil, err
	}
	return &domain.VersionRegistry{
		Applications: applications,
		Dependencies: dependencies,
	}, nil
}

func loadMapping(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.RegistryError{Path: path, Err: err}
	}

	var raw map[string]any
	if unmarshalErr := json.Unmarshal(data, &raw); unmarshalErr != nil {
		return nil, &domain.RegistryError{Path: path, Err: unmarshalErr}
	}

	return normalize(path, raw)
}

// normalize lowercases and trims keys, trims values, and drops entries with
// empty values. Keys may be "artifactId" or "groupId:artifactId". Duplicate
// keys after normalization keep the later entry, mirroring standard
// mapping-load semantics.
func normalize(path string, raw map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		version, ok := value.(string)
		if !ok {
			return nil, &domain.RegistryError{
				Path: path,
				Key:  key,
				Err:  errors.New("version must be a string"),
			}
		}

		normalizedKey := strings.ToLower(strings.TrimSpace(key))
		normalizedVersion := strings.TrimSpace(version)
		if normalizedKey == "" || normalizedVersion == "" {
			continue
		}
		out[normalizedKey] = normalizedVersion
	}
	return out, nil
}
