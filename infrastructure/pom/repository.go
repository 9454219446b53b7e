// Package pom implements the descriptor model: a format-preserving reader
// and writer for Maven POM files. Documents are never re-serialized from a
// tree; edits are byte splices into the original content, which keeps every
// untouched byte identical across a round trip.
package pom

import (
	"os"
	"path/filepath"

	"github.com/rios0rios0/pomsync/domain"
)

const defaultFileMode = 0o644

// DescriptorRepository implements domain.DescriptorRepository over the
// local filesystem.
type DescriptorRepository struct{}

// NewDescriptorRepository creates a filesystem-backed descriptor repository.
func NewDescriptorRepository() domain.DescriptorRepository {
	return &DescriptorRepository{}
}

// Load reads and parses the descriptor at path.
func (r *DescriptorRepository) Load(path string) (*domain.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}

	descriptor, parseErr := parse(data)
	if parseErr != nil {
		return nil, &domain.ParseError{Path: path, Err: parseErr}
	}
	descriptor.Path = path
	return descriptor, nil
}

// Save applies the edits and commits the result to path. The content is
// written to a temporary file in the destination directory and renamed into
// place, so a failure never leaves a partially written descriptor behind.
func (r *DescriptorRepository) Save(
	descriptor *domain.Descriptor,
	edits domain.EditSet,
	path string,
) error {
	content := Apply(descriptor.Raw, edits)

	mode := os.FileMode(defaultFileMode)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pomsync-*")
	if err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, writeErr := tmp.Write(content); writeErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &domain.WriteError{Path: path, Err: writeErr}
	}
	if chmodErr := tmp.Chmod(mode); chmodErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &domain.WriteError{Path: path, Err: chmodErr}
	}
	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmpName)
		return &domain.WriteError{Path: path, Err: closeErr}
	}

	if renameErr := os.Rename(tmpName, path); renameErr != nil {
		_ = os.Remove(tmpName)
		return &domain.WriteError{Path: path, Err: renameErr}
	}
	return nil
}
