// Package html holds static metadata about HTML elements: which tags are
// inline, void, deprecated, metadata-only or banned, and which of their
// attributes form the basic (non-presentational) set.
//
// The table is read-only and safe for concurrent use.
package html

import (
	"slices"

	"github.com/lestrrat-go/marked/node"
)

// TagFlag is a set of boolean properties of a tag.
type TagFlag uint8

const (
	// Empty tags have no content and no end tag, e.g. `<br>`.
	Empty TagFlag = 1 << iota
	// Deprecated tags are obsolete as of HTML5.
	Deprecated
	// Inline tags do not produce a block under normal usage. `<br>` is
	// not considered inline.
	Inline
	// Meta tags hold metadata only, e.g. `<head>`.
	Meta
	// Banned tags hold nothing worth extracting or displaying.
	Banned
)

func (f *TagFlag) Set(n TagFlag) {
	*f = *f | n
}

func (f TagFlag) IsSet(n TagFlag) bool {
	return f&n != 0
}

// TagMeta describes one HTML tag.
type TagMeta struct {
	flags      TagFlag
	basicAttrs []string
}

func (m *TagMeta) Flags() TagFlag {
	return m.flags
}

func (m *TagMeta) IsEmpty() bool {
	return m.flags.IsSet(Empty)
}

func (m *TagMeta) IsDeprecated() bool {
	return m.flags.IsSet(Deprecated)
}

func (m *TagMeta) IsInline() bool {
	return m.flags.IsSet(Inline)
}

func (m *TagMeta) IsMeta() bool {
	return m.flags.IsSet(Meta)
}

func (m *TagMeta) IsBanned() bool {
	return m.flags.IsSet(Banned)
}

// HasBasicAttr reports whether name belongs to the basic attribute set
// of the tag, which excludes attributes used only for styling.
func (m *TagMeta) HasBasicAttr(name string) bool {
	_, found := slices.BinarySearch(m.basicAttrs, name)
	return found
}

// BasicAttrs returns a sorted copy of the basic attribute set.
func (m *TagMeta) BasicAttrs() []string {
	return slices.Clone(m.basicAttrs)
}

// LookupTag returns the metadata of the tag with the given lower case
// local name.
func LookupTag(local string) (*TagMeta, bool) {
	m, ok := tagMeta[local]
	return m, ok
}

// LookupElement returns the metadata for an element. Elements outside
// the HTML namespace are never known.
func LookupElement(e *node.Element) (*TagMeta, bool) {
	if !e.Name.IsHTML() {
		return nil, false
	}
	return LookupTag(e.Name.Local)
}

// IsBlock reports whether data is a known HTML element that is not
// inline.
func IsBlock(data node.NodeData) bool {
	e, ok := data.(*node.Element)
	if !ok {
		return false
	}
	m, ok := LookupElement(e)
	return ok && !m.IsInline()
}
