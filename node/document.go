package node

import (
	"strings"

	"github.com/pkg/errors"
)

const defaultCapacity = 8

// node is one slot of the arena.
type node struct {
	parent     NodeID
	prev       NodeID
	next       NodeID
	firstChild NodeID
	lastChild  NodeID
	data       NodeData
}

// Document owns every node of one tree. Nodes are addressed by NodeID,
// which stay stable across all edits except Compact.
//
// A Document is not safe for concurrent mutation. Concurrent readers
// are fine as long as no writer is active.
type Document struct {
	// slot 0 is padding so that NodeID(0) never addresses a node
	nodes    []node
	encoding string
}

// New creates a Document that holds only its document node.
func New() *Document {
	return NewWithCapacity(defaultCapacity)
}

// NewWithCapacity creates a Document with room for capacity nodes
// before its storage needs to grow.
func NewWithCapacity(capacity int) *Document {
	if capacity < 1 {
		capacity = 1
	}
	nodes := make([]node, 2, capacity+1)
	nodes[DocumentID].data = DocumentRoot{}
	return &Document{nodes: nodes}
}

// Len returns the number of occupied slots, holes included.
func (d *Document) Len() int {
	return len(d.nodes) - 1
}

// IsEmpty reports whether the document node is the only occupied slot.
func (d *Document) IsEmpty() bool {
	return d.Len() <= 1
}

// Encoding returns the name of the character encoding the document was
// decoded from, if it was parsed from bytes.
func (d *Document) Encoding() string {
	return d.encoding
}

func (d *Document) SetEncoding(name string) {
	d.encoding = name
}

func (d *Document) valid(id NodeID) bool {
	return id != InvalidID && int(id) < len(d.nodes) && !isHole(d.nodes[id].data)
}

func (d *Document) check(id NodeID) error {
	if !d.valid(id) {
		return errors.Wrapf(ErrInvalidIndex, "node %s", id)
	}
	return nil
}

// Data returns the payload of id, or nil when id is not a live node.
func (d *Document) Data(id NodeID) NodeData {
	if !d.valid(id) {
		return nil
	}
	return d.nodes[id].data
}

// Root returns a reference to the document node.
func (d *Document) Root() NodeRef {
	return NodeRef{doc: d, id: DocumentID}
}

// Node returns a reference to id. ok is false when id is not live.
func (d *Document) Node(id NodeID) (NodeRef, bool) {
	if !d.valid(id) {
		return NodeRef{}, false
	}
	return NodeRef{doc: d, id: id}, true
}

// push stores data in a new unlinked slot.
func (d *Document) push(data NodeData) NodeID {
	d.nodes = append(d.nodes, node{data: data})
	return NodeID(len(d.nodes) - 1)
}

func (d *Document) checkData(data NodeData) error {
	switch data.(type) {
	case nil:
		return errors.Wrap(ErrInvalidStructure, "nil node data")
	case Hole:
		return errors.Wrap(ErrInvalidStructure, "cannot insert a hole")
	case DocumentRoot:
		return errors.Wrap(ErrInvalidStructure, "a document has exactly one document node")
	}
	return nil
}

// AppendChild adds data as the new last child of parent and returns the
// identifier of the new node.
func (d *Document) AppendChild(parent NodeID, data NodeData) (NodeID, error) {
	if err := d.check(parent); err != nil {
		return InvalidID, err
	}
	if !d.nodes[parent].data.acceptsChildren() {
		return InvalidID, errors.Wrapf(ErrInvalidStructure, "%s node %s cannot have children", d.nodes[parent].data.Type(), parent)
	}
	if err := d.checkData(data); err != nil {
		return InvalidID, err
	}

	id := d.push(data)
	d.linkLast(parent, id)
	return id, nil
}

// InsertBefore adds data as a new node immediately before sibling.
func (d *Document) InsertBefore(sibling NodeID, data NodeData) (NodeID, error) {
	if err := d.check(sibling); err != nil {
		return InvalidID, err
	}
	if d.nodes[sibling].parent == InvalidID {
		return InvalidID, errors.Wrapf(ErrInvalidStructure, "node %s has no parent", sibling)
	}
	if err := d.checkData(data); err != nil {
		return InvalidID, err
	}

	id := d.push(data)
	d.linkBefore(sibling, id)
	return id, nil
}

// RootElement returns the root element: the single Element child of the
// document node. ok is false when the document node has no Element
// child, more than one, or any Text child.
func (d *Document) RootElement() (NodeRef, bool) {
	var root NodeID
	for c := d.nodes[DocumentID].firstChild; c != InvalidID; c = d.nodes[c].next {
		switch d.nodes[c].data.(type) {
		case *Element:
			if root != InvalidID {
				return NodeRef{}, false
			}
			root = c
		case *Text:
			return NodeRef{}, false
		}
	}
	if root == InvalidID {
		return NodeRef{}, false
	}
	return NodeRef{doc: d, id: root}, true
}

// Text returns the concatenated text of id and its descendants.
func (d *Document) Text(id NodeID) (string, error) {
	if err := d.check(id); err != nil {
		return "", err
	}
	var sb strings.Builder
	d.appendText(&sb, id)
	return sb.String(), nil
}

func (d *Document) appendText(sb *strings.Builder, id NodeID) {
	if t, ok := d.nodes[id].data.(*Text); ok {
		sb.WriteString(t.Data)
		return
	}
	for c := range d.subtree(id) {
		if t, ok := d.nodes[c].data.(*Text); ok {
			sb.WriteString(t.Data)
		}
	}
}
