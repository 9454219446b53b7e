package domain

// DescriptorRepository abstracts loading and committing a POM descriptor.
type DescriptorRepository interface {
	// Load reads and parses the descriptor at path, returning the model
	// with its extracted catalog. Fails with *ParseError on malformed XML.
	Load(path string) (*Descriptor, error)

	// Save applies the edits to the descriptor bytes and writes the result
	// to path atomically; on failure the destination is left untouched.
	// Fails with *WriteError.
	Save(descriptor *Descriptor, edits EditSet, path string) error
}

// RegistryRepository abstracts loading the two external version mappings.
type RegistryRepository interface {
	// Load reads the application and dependency/plugin registries. Fails
	// with *RegistryError when either file is not a flat string-to-string
	// mapping.
	Load(appPath, depPath string) (*VersionRegistry, error)
}
