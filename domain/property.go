package domain

import (
	"regexp"
	"strings"
)

// propRefPattern matches a version written as ${property.name}.
var propRefPattern = regexp.MustCompile(`^\$\{([^}]+)}$`)

// IsPropertyRef reports whether a version value is a property reference
// rather than a literal.
func IsPropertyRef(value string) bool {
	return propRefPattern.MatchString(strings.TrimSpace(value))
}

// PropertyName returns the name inside ${...}, or "" if the value is not a
// property reference.
func PropertyName(value string) string {
	m := propRefPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return ""
	}
	return m[1]
}

// Version sources reported by ResolveVersion.
const (
	SourceExplicit = "explicit"
	SourceManaged  = "management"
	SourceNone     = "none"
)

// ResolveVersion decides the effective version of a declaration for
// reporting purposes: the explicit value wins, then the management-section
// value, and a ${prop} at either step resolves through the properties map.
// It returns the effective value and its source, one of "explicit",
// "property:<name>", "management" or "none". This never feeds edits; the
// reconciler only ever rewrites literals in place.
func ResolveVersion(explicit, managed string, props map[string]string) (string, string) {
	resolve := func(value, fallbackSource string) (string, string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return "", SourceNone
		}
		if name := PropertyName(value); name != "" {
			return strings.TrimSpace(props[name]), "property:" + name
		}
		return value, fallbackSource
	}

	if value, source := resolve(explicit, SourceExplicit); value != "" {
		return value, source
	}
	if value, source := resolve(managed, SourceManaged); value != "" {
		return value, source
	}
	return "", SourceNone
}
