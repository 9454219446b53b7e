package domain

// Reconcile matches the catalog against the registry for every enabled scope
// and computes the set of required edits plus the audit report.
//
// Each declaration is handled independently: duplicate coordinates are not
// merged and each occurrence gets its own report line. Declarations in
// disabled scopes produce neither edits nor report entries.
func Reconcile(catalog Catalog, registry *VersionRegistry, scopes ScopeSet) (EditSet, Report) {
	var edits EditSet
	var report Report

	for _, node := range catalog {
		if !scopes[node.Coordinate.Scope] {
			continue
		}

		entry := ReportEntry{
			GroupID:    node.Coordinate.GroupID,
			ArtifactID: node.Coordinate.ArtifactID,
			Scope:      node.Coordinate.Scope,
			OldVersion: node.Version,
		}

		target, found := registry.Lookup(node.Coordinate)
		switch {
		case !found:
			entry.Action = ActionSkippedNoMatch
		case node.IsIndirect():
			// Rewriting the referenced property is out of scope; report
			// which property holds the version so the caller can act.
			entry.Action = ActionSkippedIndirect
			entry.Property = PropertyName(node.Version)
		case node.Version == target:
			entry.Action = ActionUnchanged
			entry.NewVersion = target
		default:
			// Covers both a differing literal (replace) and an absent
			// version element (insert).
			entry.Action = ActionUpdated
			entry.NewVersion = target
			edits = append(edits, Edit{Handle: node.Handle, NewVersion: target})
		}

		report = append(report, entry)
	}

	return edits, report
}
