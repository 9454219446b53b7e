package domain

import "fmt"

// ParseError means the descriptor is not well-formed XML. Fatal for the run,
// raised before any write.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse descriptor %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RegistryError means a version registry file is malformed or has the wrong
// shape. Key names the offending entry when one is known. Fatal for the run,
// raised before any write.
type RegistryError struct {
	Path string
	Key  string
	Err  error
}

func (e *RegistryError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid registry %q: key %q: %v", e.Path, e.Key, e.Err)
	}
	return fmt.Sprintf("invalid registry %q: %v", e.Path, e.Err)
}

func (e *RegistryError) Unwrap() error { return e.Err }

// WriteError means the updated descriptor could not be committed. The
// original file is left untouched.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write descriptor %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
