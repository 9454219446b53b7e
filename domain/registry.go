package domain

import "strings"

// VersionRegistry holds the two external identifier -> version mappings.
// First-party projects and third-party dependencies/plugins are versioned
// independently and must never be cross-matched: PROJECT coordinates resolve
// against Applications, every other scope against Dependencies.
//
// Keys are stored lowercased. A lookup tries the most specific key first:
// "groupid:artifactid", then "artifactid".
type VersionRegistry struct {
	Applications map[string]string
	Dependencies map[string]string
}

// Lookup returns the target version for a coordinate, choosing the mapping
// by scope and preferring the groupId-qualified key.
func (r *VersionRegistry) Lookup(coord Coordinate) (string, bool) {
	mapping := r.Dependencies
	if coord.Scope == ScopeProject {
		mapping = r.Applications
	}
	if mapping == nil {
		return "", false
	}

	gid := strings.ToLower(strings.TrimSpace(coord.GroupID))
	aid := strings.ToLower(strings.TrimSpace(coord.ArtifactID))
	if aid == "" {
		return "", false
	}

	if gid != "" {
		if version, ok := mapping[gid+":"+aid]; ok {
			return version, true
		}
	}
	version, ok := mapping[aid]
	return version, ok
}
