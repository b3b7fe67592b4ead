// Package filter holds hygiene passes over a node.Document. Every pass
// is a node.FilterFunc and can be handed to Document.Filter,
// Document.FilterBreadth or Document.FilterAt. Passes never fail: a
// node they cannot classify is left alone.
package filter

import (
	"strings"

	"github.com/lestrrat-go/marked/html"
	"github.com/lestrrat-go/marked/node"
)

// Apply runs each filter over the subtree at start, one full
// depth-first walk per filter, in the given order.
func Apply(doc *node.Document, start node.NodeID, filters ...node.FilterFunc) error {
	for _, f := range filters {
		if err := doc.FilterAt(start, node.DepthFirst, f); err != nil {
			return err
		}
	}
	return nil
}

// Chain combines filters into one that runs them in order on each
// node, stopping at the first one that returns something other than
// node.Continue. Later filters see data as replaced by earlier ones.
func Chain(filters ...node.FilterFunc) node.FilterFunc {
	return func(pos node.NodeRef, data *node.NodeData) node.Action {
		for _, f := range filters {
			if act := f(pos, data); act != node.Continue {
				return act
			}
			if _, ok := (*data).(node.Hole); ok {
				return node.Detach
			}
		}
		return node.Continue
	}
}

// DetachBannedElements detaches elements flagged banned, such as script
// or form controls, and elements that are not known HTML elements.
func DetachBannedElements(_ node.NodeRef, data *node.NodeData) node.Action {
	e, ok := (*data).(*node.Element)
	if !ok {
		return node.Continue
	}
	if m, ok := html.LookupElement(e); !ok || m.IsBanned() {
		return node.Detach
	}
	return node.Continue
}

// RetainBasicAttributes removes every attribute of a known element that
// is not in the basic attribute set of its tag. Presentational and
// scripting attributes such as style or onclick are never basic.
func RetainBasicAttributes(_ node.NodeRef, data *node.NodeData) node.Action {
	e, ok := (*data).(*node.Element)
	if !ok {
		return node.Continue
	}
	if m, ok := html.LookupElement(e); ok {
		e.RetainAttrs(func(name, _ string) bool {
			return m.HasBasicAttr(name)
		})
	}
	return node.Continue
}

// FoldEmptyInline folds inline elements that hold no content, keeping
// whatever white space or comments they did hold.
func FoldEmptyInline(pos node.NodeRef, data *node.NodeData) node.Action {
	e, ok := (*data).(*node.Element)
	if !ok {
		return node.Continue
	}
	if m, ok := html.LookupElement(e); !ok || !m.IsInline() || m.IsEmpty() {
		return node.Continue
	}
	if isEmpty(pos) {
		return node.Fold
	}
	return node.Continue
}

// isEmpty reports whether n holds nothing but white space, comments,
// processing instructions, non-inline void elements like br, and
// inline elements that are themselves empty.
func isEmpty(n node.NodeRef) bool {
	for c := range n.Children() {
		switch d := c.Data().(type) {
		case *node.Text:
			if strings.TrimFunc(d.Data, isSpaceOrControl) != "" {
				return false
			}
		case *node.Comment, *node.ProcessingInstruction:
		case *node.Element:
			m, ok := html.LookupElement(d)
			switch {
			case !ok:
				return false
			case m.IsEmpty():
				if m.IsInline() {
					return false
				}
			case !m.IsInline() || !isEmpty(c):
				return false
			}
		default:
			return false
		}
	}
	return true
}

// DetachComments detaches comment nodes.
func DetachComments(_ node.NodeRef, data *node.NodeData) node.Action {
	if _, ok := (*data).(*node.Comment); ok {
		return node.Detach
	}
	return node.Continue
}

// DetachProcessingInstructions detaches processing instruction nodes.
func DetachProcessingInstructions(_ node.NodeRef, data *node.NodeData) node.Action {
	if _, ok := (*data).(*node.ProcessingInstruction); ok {
		return node.Detach
	}
	return node.Continue
}

// XmpToPre renames the obsolete xmp, listing and plaintext elements to
// pre, which renders their content the same way.
func XmpToPre(_ node.NodeRef, data *node.NodeData) node.Action {
	e, ok := (*data).(*node.Element)
	if !ok || !e.Name.IsHTML() {
		return node.Continue
	}
	switch e.Name.Local {
	case "xmp", "listing", "plaintext":
		e.Name = node.HTMLName("pre")
	}
	return node.Continue
}
