package node

import (
	"github.com/lestrrat-go/marked/internal/debug"
	"github.com/pkg/errors"
)

// Compact drops every Hole and every slot that is not reachable from the
// document node, renumbering the survivors in document order. All
// identifiers obtained before the call are invalidated.
func (d *Document) Compact() {
	live := d.subtreeSize(DocumentID)
	if live == d.Len() && d.inDocumentOrder() {
		return
	}

	fresh := &Document{nodes: make([]node, 1, live+1), encoding: d.encoding}
	fresh.graft(d, DocumentID, false, func(NodeID) {})
	if debug.Enabled {
		debug.Printf("node.Compact: %d slots -> %d", d.Len(), fresh.Len())
		debug.Dump(fresh.nodes)
	}
	d.nodes = fresh.nodes
}

func (d *Document) inDocumentOrder() bool {
	want := DocumentID
	for id := range d.subtree(DocumentID) {
		want++
		if id != want {
			return false
		}
	}
	return true
}

// BulkClone duplicates the whole storage, holes included, keeping every
// identifier unchanged.
func (d *Document) BulkClone() *Document {
	nodes := make([]node, len(d.nodes))
	for i, n := range d.nodes {
		nodes[i] = n
		if n.data != nil {
			nodes[i].data = n.data.cloneData()
		}
	}
	return &Document{nodes: nodes, encoding: d.encoding}
}

// DeepClone copies the subtree rooted at id into a new Document. Cloning
// the document node copies all of its children.
func (d *Document) DeepClone(id NodeID) (*Document, error) {
	if err := d.check(id); err != nil {
		return nil, err
	}

	out := NewWithCapacity(d.subtreeSize(id))
	out.encoding = d.encoding
	d.cloneInto(id, out, DocumentID)
	return out, nil
}

// AppendDeepClone copies the subtree rooted at id and appends it to the
// children of destParent in dest. Cloning the document node appends
// copies of all of its children.
func (d *Document) AppendDeepClone(id NodeID, dest *Document, destParent NodeID) error {
	if err := d.check(id); err != nil {
		return err
	}
	if dest == nil {
		return errors.Wrap(ErrInvalidStructure, "nil destination document")
	}
	if err := dest.check(destParent); err != nil {
		return err
	}
	if !dest.nodes[destParent].data.acceptsChildren() {
		return errors.Wrapf(ErrInvalidStructure, "%s node %s cannot have children", dest.nodes[destParent].data.Type(), destParent)
	}

	if dest == d {
		// copy out first so the walk never sees its own output
		tmp, err := d.DeepClone(id)
		if err != nil {
			return err
		}
		return d.AttachChild(destParent, tmp)
	}
	d.cloneInto(id, dest, destParent)
	return nil
}

func (d *Document) cloneInto(id NodeID, dest *Document, destParent NodeID) {
	place := func(n NodeID) {
		dest.linkLast(destParent, n)
	}
	if id != DocumentID {
		dest.graft(d, id, true, place)
		return
	}
	for _, c := range d.children(DocumentID) {
		dest.graft(d, c, true, place)
	}
}
