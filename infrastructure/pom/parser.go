package pom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/rios0rios0/pomsync/domain"
)

// parse builds the descriptor model in a single streaming pass over the raw
// bytes. Instead of materializing a tree, it records the byte span of every
// version text node (and an insertion anchor where a version element is
// missing), so the writer can later splice new values into the original
// bytes. Matching is on local element names, so namespaced and plain POMs
// behave the same.
func parse(raw []byte) (*domain.Descriptor, error) {
	p := &parser{
		dec: xml.NewDecoder(bytes.NewReader(raw)),
		raw: raw,
		descriptor: &domain.Descriptor{
			Raw:        raw,
			Properties: map[string]string{},
		},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.descriptor, nil
}

// entry tracks one open declaration element (the project itself, a
// dependency, or a plugin) while its children are being read.
type entry struct {
	scope      domain.Scope
	pluginDep  bool
	ownerAID   string // owning plugin artifactId for plugin-nested deps
	depth      int    // stack depth of the declaration element
	groupID    string
	artifactID string
	version    string
	handle     domain.NodeHandle
	hasHandle  bool
	insertAt   int64
	indent     string
}

// leaf tracks one open text-bearing child element (groupId, artifactId,
// version, or a property) until its end tag fixes the text span.
type leaf struct {
	name      string
	property  bool
	tagStart  int64
	textStart int64
}

type parser struct {
	dec        *xml.Decoder
	raw        []byte
	descriptor *domain.Descriptor
	stack      []string
	entries    []*entry
	open       *leaf
	sawRoot    bool
}

func (p *parser) run() error {
	for {
		tokenStart := p.dec.InputOffset()
		token, err := p.dec.Token()
		if errors.Is(err, io.EOF) {
			if !p.sawRoot {
				return errors.New("no XML element found")
			}
			return nil
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			p.onStart(t.Name.Local, tokenStart)
		case xml.EndElement:
			p.onEnd(tokenStart)
		}
	}
}

func (p *parser) current() *entry {
	if len(p.entries) == 0 {
		return nil
	}
	return p.entries[len(p.entries)-1]
}

func (p *parser) pathIs(parts ...string) bool {
	if len(p.stack) != len(parts) {
		return false
	}
	for i, part := range parts {
		if p.stack[i] != part {
			return false
		}
	}
	return true
}

func (p *parser) onStart(name string, tagStart int64) {
	p.stack = append(p.stack, name)
	p.sawRoot = true
	textStart := p.dec.InputOffset()

	// An element opening inside a captured leaf means the leaf is not a
	// plain text node after all; drop the capture.
	if p.open != nil {
		p.open = nil
	}

	if scope, ok := p.entryScope(name); ok {
		e := &entry{scope: scope, depth: len(p.stack)}
		if scope == "" {
			e.pluginDep = true
			e.ownerAID = p.current().artifactID
		}
		p.entries = append(p.entries, e)
		return
	}

	if p.pathIs("project", "properties", name) {
		p.open = &leaf{name: name, property: true, tagStart: tagStart, textStart: textStart}
		return
	}

	cur := p.current()
	if cur == nil || len(p.stack) != cur.depth+1 {
		return
	}
	switch name {
	case "groupId", "artifactId", "version":
		p.open = &leaf{name: name, tagStart: tagStart, textStart: textStart}
		if name == "artifactId" {
			cur.indent = indentBefore(p.raw, tagStart)
		}
	}
}

// entryScope reports whether the just-pushed element opens a declaration,
// and which scope it belongs to. Plugin-nested dependencies return ok with
// an empty scope. Only the canonical POM locations match; declarations in
// profiles or other sections are left alone.
func (p *parser) entryScope(name string) (domain.Scope, bool) {
	switch name {
	case "project":
		if len(p.stack) == 1 {
			return domain.ScopeProject, true
		}
	case "dependency":
		if p.pathIs("project", "dependencies", "dependency") {
			return domain.ScopeDependency, true
		}
		if p.pathIs("project", "dependencyManagement", "dependencies", "dependency") {
			return domain.ScopeDependencyManagement, true
		}
		if p.pathIs("project", "build", "plugins", "plugin", "dependencies", "dependency") {
			return "", true
		}
	case "plugin":
		if p.pathIs("project", "build", "plugins", "plugin") {
			return domain.ScopePlugin, true
		}
		if p.pathIs("project", "build", "pluginManagement", "plugins", "plugin") {
			return domain.ScopePluginManagement, true
		}
	}
	return "", false
}

func (p *parser) onEnd(endTagStart int64) {
	afterEnd := p.dec.InputOffset()

	if p.open != nil {
		p.closeLeaf(endTagStart, afterEnd)
	} else if cur := p.current(); cur != nil && len(p.stack) == cur.depth {
		p.finalize(cur)
		p.entries = p.entries[:len(p.entries)-1]
	}

	p.stack = p.stack[:len(p.stack)-1]
}

func (p *parser) closeLeaf(endTagStart, afterEnd int64) {
	open := p.open
	p.open = nil

	selfClosing := endTagStart == open.textStart &&
		open.textStart >= 2 && string(p.raw[open.textStart-2:open.textStart]) == "/>"

	span := string(p.raw[open.textStart:endTagStart])
	value := strings.TrimSpace(span)
	trimStart := open.textStart + int64(len(span)-len(strings.TrimLeft(span, " \t\r\n")))
	trimEnd := trimStart + int64(len(value))

	if open.property {
		p.descriptor.Properties[open.name] = value
		return
	}

	cur := p.current()
	if cur == nil {
		return
	}
	switch open.name {
	case "groupId":
		cur.groupID = value
	case "artifactId":
		cur.artifactID = value
		cur.insertAt = afterEnd
	case "version":
		cur.version = value
		cur.hasHandle = true
		cur.handle = domain.NodeHandle{
			HasVersion:  true,
			SelfClosing: selfClosing,
			TagStart:    open.tagStart,
			TextStart:   trimStart,
			TextEnd:     trimEnd,
		}
	}
}

func (p *parser) finalize(cur *entry) {
	if cur.pluginDep {
		p.descriptor.PluginDeps = append(p.descriptor.PluginDeps, domain.PluginDependency{
			Plugin:     cur.ownerAID,
			GroupID:    cur.groupID,
			ArtifactID: cur.artifactID,
			Version:    cur.version,
		})
		return
	}

	handle := cur.handle
	if !cur.hasHandle {
		handle = domain.NodeHandle{InsertAt: cur.insertAt, Indent: cur.indent}
	}
	p.descriptor.Catalog = append(p.descriptor.Catalog, domain.VersionedNode{
		Coordinate: domain.Coordinate{
			GroupID:    cur.groupID,
			ArtifactID: cur.artifactID,
			Scope:      cur.scope,
		},
		Version: cur.version,
		Handle:  handle,
	})
}

// indentBefore extracts the line break plus indentation run immediately
// preceding a start tag, straight from the raw bytes so CRLF endings
// survive. It is reused verbatim when a version element is inserted, so the
// new line matches its siblings. An empty result means the tag does not
// start its own line.
func indentBefore(raw []byte, tagStart int64) string {
	i := tagStart
	for i > 0 && (raw[i-1] == ' ' || raw[i-1] == '\t') {
		i--
	}
	if i == 0 || raw[i-1] != '\n' {
		return ""
	}
	i--
	if i > 0 && raw[i-1] == '\r' {
		i--
	}
	return string(raw[i:tagStart])
}
