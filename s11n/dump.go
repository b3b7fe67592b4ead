// Package s11n writes documents back out as markup.
package s11n

import (
	"io"
	"slices"
	"strings"

	"github.com/lestrrat-go/marked/html"
	"github.com/lestrrat-go/marked/internal/stack"
	"github.com/lestrrat-go/marked/node"
	"github.com/pkg/errors"
)

// ErrUnserializable is returned when a document contains a node that
// has no markup representation.
var ErrUnserializable = errors.New("node cannot be serialized")

type Mode int

const (
	// HTMLMode writes void elements without end tags and the content
	// of raw text elements such as script without escaping.
	HTMLMode Mode = iota
	// XMLMode writes childless elements as empty element tags and
	// starts documents with an XML declaration.
	XMLMode
)

// Dumper serializes documents. The zero value writes HTML.
type Dumper struct {
	Mode Mode
}

// elements whose text content is written as is in HTML
var rawTextElements = map[string]struct{}{
	"iframe":    {},
	"noembed":   {},
	"noframes":  {},
	"plaintext": {},
	"script":    {},
	"style":     {},
	"xmp":       {},
}

// String serializes doc as HTML.
func String(doc *node.Document) (string, error) {
	var sb strings.Builder
	var d Dumper
	if err := d.DumpDoc(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DumpDoc writes every node of doc.
func (d *Dumper) DumpDoc(out io.Writer, doc *node.Document) error {
	if d.Mode == XMLMode {
		if _, err := io.WriteString(out, "<?xml version=\"1.0\"?>\n"); err != nil {
			return err
		}
	}
	for child := range doc.Root().Children() {
		if err := d.DumpNode(out, child); err != nil {
			return err
		}
		if d.Mode == XMLMode {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

type frame struct {
	n    node.NodeRef
	exit bool
	raw  bool
}

// DumpNode writes n and its subtree.
func (d *Dumper) DumpNode(out io.Writer, n node.NodeRef) error {
	if !n.IsValid() {
		return errors.Wrapf(node.ErrInvalidIndex, "node %s", n.ID())
	}
	if n.Type() == node.DocumentNodeType {
		return d.DumpDoc(out, n.Document())
	}

	var todo stack.Stack[frame]
	todo.Push(frame{n: n, raw: d.inRawText(n)})
	for todo.Len() > 0 {
		f, _ := todo.Pop()
		if f.exit {
			e, _ := f.n.AsElement()
			if err := d.writeEndTag(out, e); err != nil {
				return err
			}
			continue
		}

		switch data := f.n.Data().(type) {
		case *node.Element:
			kids := slices.Collect(f.n.Children())
			if err := d.writeStartTag(out, data, len(kids) == 0); err != nil {
				return err
			}
			if d.selfClosing(data, len(kids) == 0) {
				continue
			}
			todo.Push(frame{n: f.n, exit: true})
			raw := d.Mode == HTMLMode && data.Name.IsHTML() && isRawText(data.Name.Local)
			for i := len(kids) - 1; i >= 0; i-- {
				todo.Push(frame{n: kids[i], raw: raw})
			}
		case *node.Text:
			if f.raw {
				if _, err := io.WriteString(out, data.Data); err != nil {
					return err
				}
				continue
			}
			if err := d.escapeText(out, data.Data); err != nil {
				return err
			}
		case *node.Comment:
			if err := writeStrings(out, "<!--", data.Data, "-->"); err != nil {
				return err
			}
		case *node.ProcessingInstruction:
			end := ">"
			if d.Mode == XMLMode {
				end = "?>"
			}
			sep := ""
			if data.Data != "" {
				sep = " "
			}
			if err := writeStrings(out, "<?", data.Target, sep, data.Data, end); err != nil {
				return err
			}
		case *node.Doctype:
			if err := d.writeDoctype(out, data); err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrUnserializable, "%s node %s", f.n.Type(), f.n.ID())
		}
	}
	return nil
}

func isRawText(local string) bool {
	_, ok := rawTextElements[local]
	return ok
}

// inRawText reports whether text under n's parent is raw.
func (d *Dumper) inRawText(n node.NodeRef) bool {
	if d.Mode != HTMLMode {
		return false
	}
	parent, ok := n.Parent()
	if !ok {
		return false
	}
	e, ok := parent.AsElement()
	return ok && e.Name.IsHTML() && isRawText(e.Name.Local)
}

func (d *Dumper) selfClosing(e *node.Element, childless bool) bool {
	if d.Mode == XMLMode {
		return childless
	}
	m, ok := html.LookupElement(e)
	return ok && m.IsEmpty()
}

func (d *Dumper) escapeText(out io.Writer, s string) error {
	if d.Mode == HTMLMode {
		return EscapeHTMLText(out, s)
	}
	return EscapeText(out, s, false)
}

func (d *Dumper) escapeAttrValue(out io.Writer, s string) error {
	if d.Mode == HTMLMode {
		return EscapeHTMLAttrValue(out, s)
	}
	return EscapeAttrValue(out, s)
}

func (d *Dumper) tagName(e *node.Element) string {
	if d.Mode == XMLMode && e.Name.Prefix != "" {
		return e.Name.Prefix + ":" + e.Name.Local
	}
	return e.Name.Local
}

func (d *Dumper) writeStartTag(out io.Writer, e *node.Element, childless bool) error {
	if err := writeStrings(out, "<", d.tagName(e)); err != nil {
		return err
	}
	for name, value := range e.Attrs() {
		if err := writeStrings(out, " ", name, `="`); err != nil {
			return err
		}
		if err := d.escapeAttrValue(out, value); err != nil {
			return err
		}
		if _, err := io.WriteString(out, `"`); err != nil {
			return err
		}
	}
	end := ">"
	if d.Mode == XMLMode && childless {
		end = "/>"
	}
	_, err := io.WriteString(out, end)
	return err
}

func (d *Dumper) writeEndTag(out io.Writer, e *node.Element) error {
	return writeStrings(out, "</", d.tagName(e), ">")
}

func (d *Dumper) writeDoctype(out io.Writer, dt *node.Doctype) error {
	if err := writeStrings(out, "<!DOCTYPE ", dt.Name); err != nil {
		return err
	}
	switch {
	case dt.PublicID != "":
		if _, err := io.WriteString(out, " PUBLIC "); err != nil {
			return err
		}
		if err := DumpQuotedString(out, dt.PublicID); err != nil {
			return err
		}
		if dt.SystemID != "" {
			if _, err := io.WriteString(out, " "); err != nil {
				return err
			}
			if err := DumpQuotedString(out, dt.SystemID); err != nil {
				return err
			}
		}
	case dt.SystemID != "":
		if _, err := io.WriteString(out, " SYSTEM "); err != nil {
			return err
		}
		if err := DumpQuotedString(out, dt.SystemID); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, ">")
	return err
}

func writeStrings(out io.Writer, list ...string) error {
	for _, s := range list {
		if _, err := io.WriteString(out, s); err != nil {
			return err
		}
	}
	return nil
}
