package node

import (
	"github.com/lestrrat-go/marked/internal/debug"
)

// Action tells the walker what to do with the node a FilterFunc was
// invoked on.
type Action int

const (
	// Continue keeps the node and descends into its children.
	Continue Action = iota
	// Fold replaces the node with its children, which are then walked.
	Fold
	// Detach removes the node and its subtree.
	Detach
	// Stop ends the walk. The node is kept.
	Stop
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Fold:
		return "fold"
	case Detach:
		return "detach"
	case Stop:
		return "stop"
	}
	return "unknown"
}

// Order selects how FilterAt walks a subtree.
type Order int

const (
	// DepthFirst visits a node before its children, left to right.
	DepthFirst Order = iota
	// BreadthFirst visits all nodes of a depth before the next depth.
	BreadthFirst
)

// FilterFunc is invoked for every node visited by a walk. pos describes
// the node in its tree; data holds its payload and may be modified in
// place or replaced by assigning to *data. Assigning a Hole is the same
// as returning Detach.
//
// Besides the returned Action, a FilterFunc may remove pos itself or
// nodes that follow pos among its siblings through pos.Document(). When
// pos was removed, the walk resumes at the node that took its place.
type FilterFunc func(pos NodeRef, data *NodeData) Action

// Filter walks the whole document depth-first.
func (d *Document) Filter(f FilterFunc) {
	d.walkDepth(DocumentID, f)
}

// FilterBreadth walks the whole document breadth-first.
func (d *Document) FilterBreadth(f FilterFunc) {
	d.walkBreadth(DocumentID, f)
}

// FilterAt walks the subtree rooted at start, start included, in the
// given order, applying the Action returned by f for each node.
//
// Removing nodes while walking never causes a surviving node to be
// skipped or a removed one to be visited. A Fold of start itself is
// applied after its subtree has been walked; Fold and Detach are
// ignored for the document node.
func (d *Document) FilterAt(start NodeID, order Order, f FilterFunc) error {
	if err := d.check(start); err != nil {
		return err
	}
	if order == BreadthFirst {
		d.walkBreadth(start, f)
		return nil
	}
	d.walkDepth(start, f)
	return nil
}

// links holds the position of a node as it was before a FilterFunc ran
// on it.
type links struct {
	parent     NodeID
	prev       NodeID
	next       NodeID
	firstChild NodeID
}

func (d *Document) linksOf(id NodeID) links {
	n := &d.nodes[id]
	return links{parent: n.parent, prev: n.prev, next: n.next, firstChild: n.firstChild}
}

// visit invokes f on id, stores any replacement data, and returns the
// action to take. gone is true when f removed id itself through the
// document, in which case only Stop is honored.
func (d *Document) visit(id NodeID, f FilterFunc) (act Action, gone bool) {
	orig := d.nodes[id].data
	data := orig
	act = f(NodeRef{doc: d, id: id}, &data)

	if !d.valid(id) {
		if act != Stop {
			act = Continue
		}
		return act, true
	}

	switch data.(type) {
	case nil, DocumentRoot:
		// not a valid payload for an existing node
		data = orig
	case Hole:
		data = orig
		act = Detach
	}

	if !data.acceptsChildren() {
		for c := d.nodes[id].firstChild; c != InvalidID; {
			next := d.nodes[c].next
			d.unlink(c)
			c = next
		}
	}
	d.nodes[id].data = data

	if id == DocumentID && (act == Fold || act == Detach) {
		act = Continue
	}
	if debug.Enabled && act != Continue {
		debug.Printf("node.visit: %s %s node %s", act, data.Type(), id)
	}
	return act, false
}

// resume returns the node taking the place of a node that was removed
// from the position described by l: its first moved child after a
// fold, otherwise the next surviving sibling, otherwise the node after
// the parent's subtree.
func (d *Document) resume(l links, start NodeID) NodeID {
	var c NodeID
	switch {
	case l.prev != InvalidID && d.valid(l.prev):
		c = d.nodes[l.prev].next
	case d.valid(l.parent):
		c = d.nodes[l.parent].firstChild
	default:
		return InvalidID
	}
	if c != InvalidID {
		return c
	}
	return d.following(l.parent, start)
}

// moved returns the children of a node removed from the position l
// that were put in its place by a fold.
func (d *Document) moved(l links) []NodeID {
	if l.firstChild == InvalidID || !d.valid(l.firstChild) || d.nodes[l.firstChild].parent != l.parent {
		return nil
	}
	var list []NodeID
	for c := l.firstChild; c != InvalidID && c != l.next; c = d.nodes[c].next {
		list = append(list, c)
	}
	return list
}

// visitStart handles the start node of a walk. It returns false if the
// walk is over.
func (d *Document) visitStart(start NodeID, f FilterFunc) (walk bool, foldStart bool) {
	act, gone := d.visit(start, f)
	if gone {
		return false, false
	}
	switch act {
	case Stop:
		return false, false
	case Detach:
		d.unlink(start)
		return false, false
	case Fold:
		return true, true
	}
	return true, false
}

func (d *Document) walkDepth(start NodeID, f FilterFunc) {
	walk, foldStart := d.visitStart(start, f)
	if foldStart {
		defer d.fold(start)
	}
	if !walk {
		return
	}

	cur := d.nodes[start].firstChild
	for cur != InvalidID {
		l := d.linksOf(cur)
		act, gone := d.visit(cur, f)
		if act == Stop {
			return
		}
		if gone {
			cur = d.resume(l, start)
			continue
		}

		switch act {
		case Detach:
			next := d.following(cur, start)
			d.unlink(cur)
			cur = next
		case Fold:
			next := d.nodes[cur].firstChild
			if next == InvalidID {
				next = d.following(cur, start)
			}
			d.fold(cur)
			cur = next
		default:
			if fc := d.nodes[cur].firstChild; fc != InvalidID {
				cur = fc
			} else {
				cur = d.following(cur, start)
			}
		}
	}
}

func (d *Document) walkBreadth(start NodeID, f FilterFunc) {
	walk, foldStart := d.visitStart(start, f)
	if foldStart {
		defer d.fold(start)
	}
	if !walk {
		return
	}

	queue := d.children(start)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if !d.valid(id) {
			// unlinked by a mutator while queued
			continue
		}

		l := d.linksOf(id)
		act, gone := d.visit(id, f)
		if act == Stop {
			return
		}
		if gone {
			queue = append(d.moved(l), queue...)
			continue
		}

		switch act {
		case Detach:
			d.unlink(id)
		case Fold:
			kids := d.children(id)
			d.fold(id)
			queue = append(kids, queue...)
		default:
			queue = append(queue, d.children(id)...)
		}
	}
}
