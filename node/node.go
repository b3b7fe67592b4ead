package node

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidIndex is returned when a NodeID does not address a live
	// node of the Document, typically because it was captured before
	// Compact or its node was detached.
	ErrInvalidIndex = errors.New("invalid node index")

	// ErrInvalidStructure is returned for edits the tree cannot
	// represent: children under a node that cannot carry them, or
	// detaching/folding the document node.
	ErrInvalidStructure = errors.New("invalid tree structure")
)

// NodeID addresses a node within one Document. The zero value means
// "no node" and never addresses a real node.
type NodeID uint32

const (
	// InvalidID is the "no relation" sentinel.
	InvalidID NodeID = 0

	// DocumentID is the identifier of the document node of every
	// Document, including after Compact.
	DocumentID NodeID = 1
)

func (id NodeID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// NodeType identifies the NodeData variant.
type NodeType int

const (
	HoleNodeType NodeType = iota
	DocumentNodeType
	DoctypeNodeType
	CommentNodeType
	ProcessingInstructionNodeType
	ElementNodeType
	TextNodeType
)

func (t NodeType) String() string {
	switch t {
	case HoleNodeType:
		return "hole"
	case DocumentNodeType:
		return "document"
	case DoctypeNodeType:
		return "doctype"
	case CommentNodeType:
		return "comment"
	case ProcessingInstructionNodeType:
		return "processing-instruction"
	case ElementNodeType:
		return "element"
	case TextNodeType:
		return "text"
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

// NodeData is the payload of a node. The set of implementations is
// closed: DocumentRoot, Doctype, Comment, ProcessingInstruction,
// *Element, *Text and Hole.
type NodeData interface {
	Type() NodeType

	// acceptsChildren reports whether nodes holding this data may have
	// children.
	acceptsChildren() bool

	// cloneData returns an independent copy.
	cloneData() NodeData
}

// AcceptsChildren reports whether a node holding data may have children.
func AcceptsChildren(data NodeData) bool {
	return data != nil && data.acceptsChildren()
}

// CloneData returns a deep copy of data.
func CloneData(data NodeData) NodeData {
	if data == nil {
		return nil
	}
	return data.cloneData()
}

// DocumentRoot marks the single document node of a Document.
type DocumentRoot struct{}

func (DocumentRoot) Type() NodeType        { return DocumentNodeType }
func (DocumentRoot) acceptsChildren() bool { return true }
func (d DocumentRoot) cloneData() NodeData { return d }

// Hole is left in slots whose node was detached or folded. Holes are
// unreachable from the document node and reclaimed by Compact.
type Hole struct{}

func (Hole) Type() NodeType        { return HoleNodeType }
func (Hole) acceptsChildren() bool { return false }
func (h Hole) cloneData() NodeData { return h }

func isHole(data NodeData) bool {
	_, ok := data.(Hole)
	return ok
}

// Doctype is a document type declaration.
type Doctype struct {
	Name     string
	PublicID string
	SystemID string
}

func (*Doctype) Type() NodeType        { return DoctypeNodeType }
func (*Doctype) acceptsChildren() bool { return false }
func (d *Doctype) cloneData() NodeData {
	c := *d
	return &c
}

// Comment holds the text of a markup comment.
type Comment struct {
	Data string
}

func (*Comment) Type() NodeType        { return CommentNodeType }
func (*Comment) acceptsChildren() bool { return false }
func (c *Comment) cloneData() NodeData {
	cc := *c
	return &cc
}

// ProcessingInstruction is a `<?target data?>` node.
type ProcessingInstruction struct {
	Target string
	Data   string
}

func (*ProcessingInstruction) Type() NodeType        { return ProcessingInstructionNodeType }
func (*ProcessingInstruction) acceptsChildren() bool { return false }
func (p *ProcessingInstruction) cloneData() NodeData {
	c := *p
	return &c
}

// Text is character content.
type Text struct {
	Data string
}

func NewText(s string) *Text {
	return &Text{Data: s}
}

func (*Text) Type() NodeType        { return TextNodeType }
func (*Text) acceptsChildren() bool { return false }
func (t *Text) cloneData() NodeData {
	c := *t
	return &c
}
