package node

import (
	"iter"
	"strings"
)

// NodeRef is a read-only view of one node of a Document. It is a small
// value and is meant to be passed around by copy.
type NodeRef struct {
	doc *Document
	id  NodeID
}

// Predicate selects nodes in Select and Find.
type Predicate func(NodeRef) bool

func (r NodeRef) ID() NodeID {
	return r.id
}

func (r NodeRef) Document() *Document {
	return r.doc
}

// IsValid reports whether r still addresses a live node.
func (r NodeRef) IsValid() bool {
	return r.doc != nil && r.doc.valid(r.id)
}

func (r NodeRef) Data() NodeData {
	return r.doc.nodes[r.id].data
}

func (r NodeRef) Type() NodeType {
	return r.Data().Type()
}

// AsElement returns the element data of r, if r is an element.
func (r NodeRef) AsElement() (*Element, bool) {
	e, ok := r.Data().(*Element)
	return e, ok
}

// AsText returns the text data of r, if r is a text node.
func (r NodeRef) AsText() (*Text, bool) {
	t, ok := r.Data().(*Text)
	return t, ok
}

// Is reports whether r is the HTML element local.
func (r NodeRef) Is(local string) bool {
	e, ok := r.AsElement()
	return ok && e.Is(local)
}

func (r NodeRef) rel(id NodeID) (NodeRef, bool) {
	if id == InvalidID {
		return NodeRef{}, false
	}
	return NodeRef{doc: r.doc, id: id}, true
}

func (r NodeRef) Parent() (NodeRef, bool) {
	return r.rel(r.doc.nodes[r.id].parent)
}

func (r NodeRef) FirstChild() (NodeRef, bool) {
	return r.rel(r.doc.nodes[r.id].firstChild)
}

func (r NodeRef) LastChild() (NodeRef, bool) {
	return r.rel(r.doc.nodes[r.id].lastChild)
}

func (r NodeRef) NextSibling() (NodeRef, bool) {
	return r.rel(r.doc.nodes[r.id].next)
}

func (r NodeRef) PrevSibling() (NodeRef, bool) {
	return r.rel(r.doc.nodes[r.id].prev)
}

// chain yields the nodes reached by repeatedly following step from
// start, start included.
func (r NodeRef) chain(start NodeID, step func(*node) NodeID) iter.Seq[NodeRef] {
	return func(yield func(NodeRef) bool) {
		for id := start; id != InvalidID; id = step(&r.doc.nodes[id]) {
			if !yield(NodeRef{doc: r.doc, id: id}) {
				return
			}
		}
	}
}

func nextOf(n *node) NodeID   { return n.next }
func prevOf(n *node) NodeID   { return n.prev }
func parentOf(n *node) NodeID { return n.parent }

// Children iterates over the children of r in order.
func (r NodeRef) Children() iter.Seq[NodeRef] {
	return r.chain(r.doc.nodes[r.id].firstChild, nextOf)
}

// FollowingSiblings iterates over the siblings after r.
func (r NodeRef) FollowingSiblings() iter.Seq[NodeRef] {
	return r.chain(r.doc.nodes[r.id].next, nextOf)
}

// PrecedingSiblings iterates over the siblings before r, nearest first.
func (r NodeRef) PrecedingSiblings() iter.Seq[NodeRef] {
	return r.chain(r.doc.nodes[r.id].prev, prevOf)
}

// Ancestors iterates from the parent of r up to the document node.
func (r NodeRef) Ancestors() iter.Seq[NodeRef] {
	return r.chain(r.doc.nodes[r.id].parent, parentOf)
}

// NodeAndAncestors is like Ancestors but starts with r itself.
func (r NodeRef) NodeAndAncestors() iter.Seq[NodeRef] {
	return r.chain(r.id, parentOf)
}

// Descendants iterates over the subtree of r in pre-order, r excluded.
func (r NodeRef) Descendants() iter.Seq[NodeRef] {
	return func(yield func(NodeRef) bool) {
		for id := range r.doc.subtree(r.id) {
			if !yield(NodeRef{doc: r.doc, id: id}) {
				return
			}
		}
	}
}

// Select iterates over the descendants of r matching pred, in
// pre-order.
func (r NodeRef) Select(pred Predicate) iter.Seq[NodeRef] {
	return filterSeq(r.Descendants(), pred)
}

// SelectChildren iterates over the children of r matching pred.
func (r NodeRef) SelectChildren(pred Predicate) iter.Seq[NodeRef] {
	return filterSeq(r.Children(), pred)
}

// Find returns the first descendant of r matching pred.
func (r NodeRef) Find(pred Predicate) (NodeRef, bool) {
	return first(r.Select(pred))
}

// FindChild returns the first child of r matching pred.
func (r NodeRef) FindChild(pred Predicate) (NodeRef, bool) {
	return first(r.SelectChildren(pred))
}

// Text returns the concatenated text of r and its descendants.
func (r NodeRef) Text() string {
	var sb strings.Builder
	r.doc.appendText(&sb, r.id)
	return sb.String()
}

func filterSeq(seq iter.Seq[NodeRef], pred Predicate) iter.Seq[NodeRef] {
	return func(yield func(NodeRef) bool) {
		for n := range seq {
			if pred(n) && !yield(n) {
				return
			}
		}
	}
}

func first(seq iter.Seq[NodeRef]) (NodeRef, bool) {
	for n := range seq {
		return n, true
	}
	return NodeRef{}, false
}
