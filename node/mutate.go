package node

import (
	"github.com/lestrrat-go/marked/internal/debug"
	"github.com/lestrrat-go/marked/internal/stack"
	"github.com/pkg/errors"
)

func (d *Document) checkNotRoot(id NodeID, op string) error {
	if err := d.check(id); err != nil {
		return err
	}
	if id == DocumentID {
		return errors.Wrapf(ErrInvalidStructure, "cannot %s the document node", op)
	}
	return nil
}

func checkFragment(d, frag *Document) error {
	if frag == nil {
		return errors.Wrap(ErrInvalidStructure, "nil fragment")
	}
	if frag == d {
		return errors.Wrap(ErrInvalidStructure, "cannot attach a document to itself")
	}
	return nil
}

// Detach removes the subtree rooted at id and returns it as a new
// Document (a fragment) whose document node has the subtree as its only
// child. Every slot of the subtree becomes a Hole in d.
func (d *Document) Detach(id NodeID) (*Document, error) {
	if err := d.checkNotRoot(id, "detach"); err != nil {
		return nil, err
	}

	frag := NewWithCapacity(d.subtreeSize(id) + 1)
	d.unlinkOnly(id)
	frag.graft(d, id, false, func(n NodeID) {
		frag.linkLast(DocumentID, n)
	})
	d.holeOut(id)
	return frag, nil
}

// Unlink removes the subtree rooted at id without producing a fragment,
// and returns the data id held.
func (d *Document) Unlink(id NodeID) (NodeData, error) {
	if err := d.checkNotRoot(id, "unlink"); err != nil {
		return nil, err
	}
	return d.unlink(id), nil
}

func (d *Document) unlink(id NodeID) NodeData {
	data := d.nodes[id].data
	d.unlinkOnly(id)
	d.holeOut(id)
	return data
}

// AttachChild moves the children of frag's document node to the end of
// parent's children. frag is consumed and left empty.
func (d *Document) AttachChild(parent NodeID, frag *Document) error {
	if err := d.check(parent); err != nil {
		return err
	}
	if !d.nodes[parent].data.acceptsChildren() {
		return errors.Wrapf(ErrInvalidStructure, "%s node %s cannot have children", d.nodes[parent].data.Type(), parent)
	}
	if err := checkFragment(d, frag); err != nil {
		return err
	}

	for _, c := range frag.children(DocumentID) {
		d.graft(frag, c, false, func(n NodeID) {
			d.linkLast(parent, n)
		})
	}
	frag.reset()
	return nil
}

// AttachBeforeSibling moves the children of frag's document node to the
// position immediately before sibling. frag is consumed and left empty.
func (d *Document) AttachBeforeSibling(sibling NodeID, frag *Document) error {
	if err := d.checkNotRoot(sibling, "attach before"); err != nil {
		return err
	}
	if err := checkFragment(d, frag); err != nil {
		return err
	}

	for _, c := range frag.children(DocumentID) {
		d.graft(frag, c, false, func(n NodeID) {
			d.linkBefore(sibling, n)
		})
	}
	frag.reset()
	return nil
}

// Fold replaces id with its children, in order, and returns the data id
// held. The slot of id becomes a Hole.
func (d *Document) Fold(id NodeID) (NodeData, error) {
	if err := d.checkNotRoot(id, "fold"); err != nil {
		return nil, err
	}
	return d.fold(id), nil
}

func (d *Document) fold(id NodeID) NodeData {
	n := &d.nodes[id]
	for c := n.firstChild; c != InvalidID; {
		next := d.nodes[c].next
		d.unlinkOnly(c)
		d.linkBefore(id, c)
		c = next
	}
	data := d.nodes[id].data
	d.unlinkOnly(id)
	d.nodes[id] = node{data: Hole{}}
	if debug.Enabled {
		debug.Printf("node.fold: folded %s node %s", data.Type(), id)
	}
	return data
}

// reset drops every node but a fresh document node.
func (d *Document) reset() {
	d.nodes = d.nodes[:2]
	d.nodes[DocumentID] = node{data: DocumentRoot{}}
}

// graft copies the subtree of src rooted at id into d and returns the
// new identifier of id. place links the copy of id; descendants keep
// their shape. With clone the data is deep copied, otherwise it is
// moved and the caller is responsible for the source slots.
func (d *Document) graft(src *Document, id NodeID, clone bool, place func(NodeID)) NodeID {
	type pending struct {
		src    NodeID
		parent NodeID
	}

	take := func(id NodeID) NodeData {
		if clone {
			return src.nodes[id].data.cloneData()
		}
		return src.nodes[id].data
	}

	var todo stack.Stack[pending]
	pushChildren := func(from, parent NodeID) {
		for c := src.nodes[from].lastChild; c != InvalidID; c = src.nodes[c].prev {
			if isHole(src.nodes[c].data) {
				continue
			}
			todo.Push(pending{src: c, parent: parent})
		}
	}

	top := d.push(take(id))
	place(top)
	pushChildren(id, top)
	for {
		p, ok := todo.Pop()
		if !ok {
			break
		}
		n := d.push(take(p.src))
		d.linkLast(p.parent, n)
		pushChildren(p.src, n)
	}
	return top
}
