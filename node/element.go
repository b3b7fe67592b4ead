package node

import (
	"iter"

	"github.com/lestrrat-go/marked/internal/orderedmap"
)

// Element is a named node with attributes. Attribute names are unique
// and keep their insertion order.
type Element struct {
	Name  QualName
	attrs *orderedmap.Map[string, string]
}

// NewElement creates an element without attributes.
func NewElement(name QualName) *Element {
	return &Element{Name: name}
}

// NewHTMLElement creates an element in the HTML namespace.
func NewHTMLElement(local string) *Element {
	return NewElement(HTMLName(local))
}

func (*Element) Type() NodeType        { return ElementNodeType }
func (*Element) acceptsChildren() bool { return true }

func (e *Element) cloneData() NodeData {
	c := &Element{Name: e.Name}
	if e.attrs != nil {
		c.attrs = e.attrs.Clone()
	}
	return c
}

// Is reports whether e is the HTML element named local.
func (e *Element) Is(local string) bool {
	return e.Name.Local == local && e.Name.IsHTML()
}

// Attr returns the value of the attribute name.
func (e *Element) Attr(name string) (string, bool) {
	if e.attrs == nil {
		return "", false
	}
	return e.attrs.Get(name)
}

// SetAttr sets an attribute, returning the previous value if the
// attribute existed. A replaced attribute keeps its position.
func (e *Element) SetAttr(name, value string) (string, bool) {
	if e.attrs == nil {
		e.attrs = orderedmap.New[string, string]()
	}
	return e.attrs.Store(name, value)
}

// RemoveAttr removes an attribute, returning its value.
func (e *Element) RemoveAttr(name string) (string, bool) {
	if e.attrs == nil {
		return "", false
	}
	return e.attrs.Delete(name)
}

// RetainAttrs removes every attribute for which keep returns false, and
// returns the number of removed attributes.
func (e *Element) RetainAttrs(keep func(name, value string) bool) int {
	if e.attrs == nil {
		return 0
	}
	return e.attrs.DeleteFunc(func(name, value string) bool {
		return !keep(name, value)
	})
}

func (e *Element) NumAttrs() int {
	if e.attrs == nil {
		return 0
	}
	return e.attrs.Len()
}

// Attrs iterates over the attributes in insertion order.
func (e *Element) Attrs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if e.attrs == nil {
			return
		}
		for k, v := range e.attrs.Range() {
			if !yield(k, v) {
				return
			}
		}
	}
}
