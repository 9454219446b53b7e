package domain

// Action classifies the outcome of reconciling one declaration. The two
// skip actions are expected outcomes, not errors.
type Action string

const (
	ActionUpdated         Action = "updated"
	ActionUnchanged       Action = "unchanged"
	ActionSkippedNoMatch  Action = "skipped_no_match"
	ActionSkippedIndirect Action = "skipped_indirect"
)

// ReportEntry records what happened to one declaration. Property is set only
// for skipped_indirect entries and names the referenced property.
type ReportEntry struct {
	GroupID    string `json:"groupId,omitempty"`
	ArtifactID string `json:"artifactId"`
	Scope      Scope  `json:"scope"`
	OldVersion string `json:"oldVersion,omitempty"`
	NewVersion string `json:"newVersion,omitempty"`
	Action     Action `json:"action"`
	Property   string `json:"property,omitempty"`
}

// Report is the full audit trail of one reconciliation pass, one entry per
// catalog declaration in an enabled scope, in document order.
type Report []ReportEntry

// Count returns the number of entries with the given action.
func (r Report) Count(action Action) int {
	total := 0
	for _, entry := range r {
		if entry.Action == action {
			total++
		}
	}
	return total
}
