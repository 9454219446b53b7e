package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/pomsync/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// VersionedNodeBuilder helps create test catalog entries with a fluent interface.
type VersionedNodeBuilder struct {
	*testkit.BaseBuilder
	groupID    string
	artifactID string
	scope      domain.Scope
	version    string
	handle     domain.NodeHandle
}

// NewVersionedNodeBuilder creates a new builder with sensible defaults.
func NewVersionedNodeBuilder() *VersionedNodeBuilder {
	return &VersionedNodeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     "com.example",
		artifactID:  "test-artifact",
		scope:       domain.ScopeDependency,
		version:     "1.0.0",
		handle:      domain.NodeHandle{HasVersion: true},
	}
}

// WithGroupID sets the groupId.
func (b *VersionedNodeBuilder) WithGroupID(groupID string) *VersionedNodeBuilder {
	b.groupID = groupID
	return b
}

// WithArtifactID sets the artifactId.
func (b *VersionedNodeBuilder) WithArtifactID(artifactID string) *VersionedNodeBuilder {
	b.artifactID = artifactID
	return b
}

// WithScope sets the declaration scope.
func (b *VersionedNodeBuilder) WithScope(scope domain.Scope) *VersionedNodeBuilder {
	b.scope = scope
	return b
}

// WithVersion sets the declared version text.
func (b *VersionedNodeBuilder) WithVersion(version string) *VersionedNodeBuilder {
	b.version = version
	return b
}

// WithoutVersion marks the declaration as having no version element.
func (b *VersionedNodeBuilder) WithoutVersion() *VersionedNodeBuilder {
	b.version = ""
	b.handle = domain.NodeHandle{}
	return b
}

// WithHandle sets the node handle.
func (b *VersionedNodeBuilder) WithHandle(handle domain.NodeHandle) *VersionedNodeBuilder {
	b.handle = handle
	return b
}

// Build creates the node (satisfies testkit.Builder interface).
func (b *VersionedNodeBuilder) Build() interface{} {
	return b.BuildVersionedNode()
}

// BuildVersionedNode creates the node with a concrete return type.
func (b *VersionedNodeBuilder) BuildVersionedNode() domain.VersionedNode {
	return domain.VersionedNode{
		Coordinate: domain.Coordinate{
			GroupID:    b.groupID,
			ArtifactID: b.artifactID,
			Scope:      b.scope,
		},
		Version: b.version,
		Handle:  b.handle,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *VersionedNodeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = "com.example"
	b.artifactID = "test-artifact"
	b.scope = domain.ScopeDependency
	b.version = "1.0.0"
	b.handle = domain.NodeHandle{HasVersion: true}
	return b
}

// Clone creates a deep copy of the VersionedNodeBuilder.
func (b *VersionedNodeBuilder) Clone() testkit.Builder {
	return &VersionedNodeBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:     b.groupID,
		artifactID:  b.artifactID,
		scope:       b.scope,
		version:     b.version,
		handle:      b.handle,
	}
}
