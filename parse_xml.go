package marked

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/marked/encoding"
	"github.com/lestrrat-go/marked/internal/stack"
	"github.com/lestrrat-go/marked/internal/stack/nsstack"
	"github.com/lestrrat-go/marked/node"
	"github.com/pkg/errors"
)

// ParseXML reads a well-formed UTF-8 XML document from r. Documents
// declaring any other encoding are rejected with an error wrapping
// ErrEncodingUnsupported; malformed documents with one wrapping
// ErrParseAborted.
func ParseXML(ctx context.Context, r io.Reader, options ...XMLOption) (*node.Document, error) {
	cfg := newXMLConfig(options)
	tlog := getTraceLogFromContext(ctx)

	var encErr error
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		if e := encoding.Load(label); e != nil && encoding.Name(e) == "utf-8" {
			return input, nil
		}
		encErr = errors.Wrapf(ErrEncodingUnsupported, "xml: declared encoding %q", label)
		return nil, encErr
	}

	b := newXMLBuilder(cfg)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if encErr != nil {
				return nil, encErr
			}
			return nil, errors.Wrapf(ErrParseAborted, "xml: %s", err)
		}
		if err := b.handle(tok); err != nil {
			return nil, errors.Wrap(err, "failed to build document")
		}
	}
	if b.open.Len() > 0 {
		return nil, errors.Wrap(ErrParseAborted, "xml: unexpected end of input")
	}

	b.doc.SetEncoding("utf-8")
	tlog.Debug("xml document parsed", slog.Int("nodes", b.doc.Len()))
	return b.doc, nil
}

// ParseXMLBytes is ParseXML over an in-memory input.
func ParseXMLBytes(ctx context.Context, b []byte, options ...XMLOption) (*node.Document, error) {
	return ParseXML(ctx, bytes.NewReader(b), options...)
}

type xmlBuilder struct {
	doc        *node.Document
	keepBlanks bool
	ns         *nsstack.Stack
	// open holds the element nodes not closed yet, with the number of
	// namespace bindings each one declared.
	open stack.Stack[openElement]
}

type openElement struct {
	id       node.NodeID
	bindings int
}

func newXMLBuilder(cfg *xmlConfig) *xmlBuilder {
	return &xmlBuilder{
		doc:        node.NewWithCapacity(cfg.capacity),
		keepBlanks: cfg.keepBlanks,
		ns:         nsstack.New(),
	}
}

func (b *xmlBuilder) current() node.NodeID {
	if top, ok := b.open.Top(); ok {
		return top.id
	}
	return node.DocumentID
}

func (b *xmlBuilder) prefixFor(uri string) string {
	switch uri {
	case "":
		return ""
	case node.NamespaceXML:
		return "xml"
	}
	p, _ := b.ns.PrefixFor(uri)
	return p
}

func (b *xmlBuilder) handle(tok xml.Token) error {
	switch t := tok.(type) {
	case xml.StartElement:
		var bindings int
		for _, a := range t.Attr {
			switch {
			case a.Name.Space == "xmlns":
				b.ns.Push(a.Name.Local, a.Value)
				bindings++
			case a.Name.Space == "" && a.Name.Local == "xmlns":
				b.ns.Push("", a.Value)
				bindings++
			}
		}

		e := node.NewElement(node.QualName{
			NS:     t.Name.Space,
			Prefix: b.prefixFor(t.Name.Space),
			Local:  t.Name.Local,
		})
		for _, a := range t.Attr {
			e.SetAttr(b.attrName(a.Name), a.Value)
		}
		id, err := b.doc.AppendChild(b.current(), e)
		if err != nil {
			return err
		}
		b.open.Push(openElement{id: id, bindings: bindings})
	case xml.EndElement:
		top, ok := b.open.Pop()
		if !ok {
			return errors.Wrapf(ErrParseAborted, "xml: unexpected end element %q", t.Name.Local)
		}
		b.ns.Pop(top.bindings)
	case xml.CharData:
		s := string(t)
		if !b.keepBlanks && strings.TrimSpace(s) == "" {
			return nil
		}
		return b.appendText(s)
	case xml.Comment:
		_, err := b.doc.AppendChild(b.current(), &node.Comment{Data: string(t)})
		return err
	case xml.ProcInst:
		if t.Target == "xml" {
			return nil
		}
		_, err := b.doc.AppendChild(b.current(), &node.ProcessingInstruction{Target: t.Target, Data: string(t.Inst)})
		return err
	case xml.Directive:
		fields := strings.Fields(string(t))
		if len(fields) < 2 || fields[0] != "DOCTYPE" {
			return nil
		}
		_, err := b.doc.AppendChild(b.current(), &node.Doctype{Name: strings.TrimSuffix(fields[1], "[")})
		return err
	}
	return nil
}

func (b *xmlBuilder) attrName(name xml.Name) string {
	switch name.Space {
	case "":
		return name.Local
	case "xmlns":
		return "xmlns:" + name.Local
	}
	if p := b.prefixFor(name.Space); p != "" {
		return p + ":" + name.Local
	}
	return name.Space + ":" + name.Local
}

// appendText extends a text node that is the last child of the current
// element, so that CDATA sections and character data form one node.
func (b *xmlBuilder) appendText(s string) error {
	cur, _ := b.doc.Node(b.current())
	if last, ok := cur.LastChild(); ok {
		if t, ok := last.AsText(); ok {
			t.Data += s
			return nil
		}
	}
	_, err := b.doc.AppendChild(cur.ID(), node.NewText(s))
	return err
}
