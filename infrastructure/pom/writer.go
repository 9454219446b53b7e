package pom

import (
	"bytes"
	"sort"

	"github.com/rios0rios0/pomsync/domain"
)

// Apply splices the computed edits into the raw descriptor bytes. Everything
// outside the edited spans is copied through untouched, so an empty edit set
// returns the input bytes as-is.
func Apply(raw []byte, edits domain.EditSet) []byte {
	if len(edits) == 0 {
		return raw
	}

	ordered := make(domain.EditSet, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return editPosition(ordered[i]) < editPosition(ordered[j])
	})

	var buf bytes.Buffer
	buf.Grow(len(raw) + len(ordered)*32)
	var cursor int64

	for _, edit := range ordered {
		handle := edit.Handle
		switch {
		case handle.HasVersion && handle.SelfClosing:
			// Rewrite the whole <version/> tag as a full element.
			buf.Write(raw[cursor:handle.TagStart])
			buf.WriteString("<version>")
			buf.WriteString(edit.NewVersion)
			buf.WriteString("</version>")
			cursor = handle.TextStart
		case handle.HasVersion:
			buf.Write(raw[cursor:handle.TextStart])
			buf.WriteString(edit.NewVersion)
			cursor = handle.TextEnd
		default:
			// No version element yet: insert one right after
			// </artifactId>, on its own line when siblings are.
			buf.Write(raw[cursor:handle.InsertAt])
			buf.WriteString(handle.Indent)
			buf.WriteString("<version>")
			buf.WriteString(edit.NewVersion)
			buf.WriteString("</version>")
			cursor = handle.InsertAt
		}
	}

	buf.Write(raw[cursor:])
	return buf.Bytes()
}

func editPosition(edit domain.Edit) int64 {
	if edit.Handle.HasVersion {
		return edit.Handle.TextStart
	}
	return edit.Handle.InsertAt
}
