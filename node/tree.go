package node

import (
	"iter"

	"github.com/lestrrat-go/marked/internal/stack"
)

// linkLast links the unlinked node id as the last child of parent.
func (d *Document) linkLast(parent, id NodeID) {
	n := &d.nodes[id]
	p := &d.nodes[parent]
	n.parent = parent
	if last := p.lastChild; last != InvalidID {
		d.nodes[last].next = id
		n.prev = last
	} else {
		p.firstChild = id
	}
	p.lastChild = id
}

// linkBefore links the unlinked node id immediately before sibling.
func (d *Document) linkBefore(sibling, id NodeID) {
	n := &d.nodes[id]
	s := &d.nodes[sibling]
	parent := s.parent
	prev := s.prev

	n.parent = parent
	n.next = sibling
	n.prev = prev
	s.prev = id
	if prev != InvalidID {
		d.nodes[prev].next = id
	} else {
		d.nodes[parent].firstChild = id
	}
}

// unlinkOnly removes id from its parent and siblings, leaving its own
// subtree intact.
func (d *Document) unlinkOnly(id NodeID) {
	n := &d.nodes[id]
	if n.prev != InvalidID {
		d.nodes[n.prev].next = n.next
	} else if n.parent != InvalidID {
		d.nodes[n.parent].firstChild = n.next
	}
	if n.next != InvalidID {
		d.nodes[n.next].prev = n.prev
	} else if n.parent != InvalidID {
		d.nodes[n.parent].lastChild = n.prev
	}
	n.parent = InvalidID
	n.prev = InvalidID
	n.next = InvalidID
}

// holeOut turns the unlinked subtree rooted at id into holes.
func (d *Document) holeOut(id NodeID) {
	var pending stack.Stack[NodeID]
	pending.Push(id)
	for {
		cur, ok := pending.Pop()
		if !ok {
			return
		}
		for c := d.nodes[cur].firstChild; c != InvalidID; c = d.nodes[c].next {
			pending.Push(c)
		}
		d.nodes[cur] = node{data: Hole{}}
	}
}

// following returns the next node in pre-order after the subtree of c,
// without leaving the subtree of top.
func (d *Document) following(c, top NodeID) NodeID {
	for c != top && c != InvalidID {
		if next := d.nodes[c].next; next != InvalidID {
			return next
		}
		c = d.nodes[c].parent
	}
	return InvalidID
}

// subtree yields the descendants of top in pre-order, top excluded.
func (d *Document) subtree(top NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		c := d.nodes[top].firstChild
		for c != InvalidID {
			if !yield(c) {
				return
			}
			if fc := d.nodes[c].firstChild; fc != InvalidID {
				c = fc
				continue
			}
			c = d.following(c, top)
		}
	}
}

// subtreeSize counts id and its descendants.
func (d *Document) subtreeSize(id NodeID) int {
	n := 1
	for range d.subtree(id) {
		n++
	}
	return n
}

func (d *Document) children(id NodeID) []NodeID {
	var out []NodeID
	for c := d.nodes[id].firstChild; c != InvalidID; c = d.nodes[c].next {
		out = append(out, c)
	}
	return out
}
