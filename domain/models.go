package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Scope is the structural category of a versioned declaration in a POM.
type Scope string

const (
	ScopeProject              Scope = "project"
	ScopeDependency           Scope = "dependencies"
	ScopeDependencyManagement Scope = "dependency-management"
	ScopePlugin               Scope = "plugins"
	ScopePluginManagement     Scope = "plugin-management"
)

// AllScopes lists every scope in a stable order.
func AllScopes() []Scope {
	return []Scope{
		ScopeProject,
		ScopeDependency,
		ScopeDependencyManagement,
		ScopePlugin,
		ScopePluginManagement,
	}
}

// ScopeSet is the set of scopes a reconciliation run is allowed to touch.
type ScopeSet map[Scope]bool

// DefaultScopes returns the default gating: project identity and plugin
// scopes are processed, dependency scopes are opt-in.
func DefaultScopes() ScopeSet {
	return ScopeSet{
		ScopeProject:          true,
		ScopePlugin:           true,
		ScopePluginManagement: true,
	}
}

// ParseScopes builds a ScopeSet from scope names, rejecting unknown ones.
// An empty list yields the default gating.
func ParseScopes(names []string) (ScopeSet, error) {
	if len(names) == 0 {
		return DefaultScopes(), nil
	}
	set := ScopeSet{}
	for _, name := range names {
		scope := Scope(strings.TrimSpace(name))
		if !slices.Contains(AllScopes(), scope) {
			return nil, fmt.Errorf("unknown scope %q", name)
		}
		set[scope] = true
	}
	return set, nil
}

// Coordinate identifies a versioned declaration by artifactId within a
// scope; groupId disambiguates and is carried through, never dropped.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Scope      Scope
}

// NodeHandle is a stable reference back into the descriptor bytes, so the
// writer can splice in place without re-searching the document.
//
// When HasVersion is true, [TextStart, TextEnd) is the trimmed byte span of
// the version text to replace (TagStart additionally marks the start of the
// whole element for self-closing forms). When false, InsertAt is the offset
// immediately after </artifactId> and Indent is the whitespace run to emit
// before an inserted <version> element.
type NodeHandle struct {
	HasVersion  bool
	SelfClosing bool
	TagStart    int64
	TextStart   int64
	TextEnd     int64
	InsertAt    int64
	Indent      string
}

// VersionedNode is a coordinate plus the version value exactly as written
// in the document. Version is empty when the declaration has no <version>
// element at all (distinct from an indirect property reference).
type VersionedNode struct {
	Coordinate Coordinate
	Version    string
	Handle     NodeHandle
}

// HasVersion reports whether the declaration carries any version text.
func (n VersionedNode) HasVersion() bool { return n.Version != "" }

// IsIndirect reports whether the version is a ${property} reference.
func (n VersionedNode) IsIndirect() bool { return IsPropertyRef(n.Version) }

// Catalog is the ordered sequence of versioned declarations found in a
// descriptor, insertion order = document order. Duplicate coordinates are
// recorded as-is; the reconciler handles each occurrence independently.
type Catalog []VersionedNode

// ManagedVersions returns artifactId -> declared version for every entry in
// the given management scope. Used when resolving effective versions for
// the read-only listing.
func (c Catalog) ManagedVersions(scope Scope) map[string]string {
	out := map[string]string{}
	for _, node := range c {
		if node.Coordinate.Scope == scope && node.Version != "" {
			out[node.Coordinate.ArtifactID] = node.Version
		}
	}
	return out
}

// PluginDependency is a dependency declared inside a plugin's own
// <dependencies> block. These are surfaced by the read-only listing and are
// never reconciled.
type PluginDependency struct {
	Plugin     string
	GroupID    string
	ArtifactID string
	Version    string
}

// Descriptor is the in-memory model of one POM: the raw bytes plus the
// extracted catalog and supporting sections. It is built fresh per run and
// discarded afterwards.
type Descriptor struct {
	Path       string
	Raw        []byte
	Catalog    Catalog
	Properties map[string]string
	PluginDeps []PluginDependency
}

// Edit is a single computed modification: write NewVersion at Handle.
type Edit struct {
	Handle     NodeHandle
	NewVersion string
}

// EditSet is the ordered set of edits produced by one reconciliation.
type EditSet []Edit
