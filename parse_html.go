package marked

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/marked/html"
	"github.com/lestrrat-go/marked/internal/stack"
	"github.com/lestrrat-go/marked/node"
	"github.com/pkg/errors"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML reads an HTML document from r, detecting its encoding, and
// returns it as a Document. The name of the encoding the input was
// decoded with is available from the document's Encoding method.
func ParseHTML(ctx context.Context, r io.Reader, options ...HTMLOption) (*node.Document, error) {
	doc, _, err := parseHTML(ctx, r, newHTMLConfig(options))
	return doc, err
}

// ParseHTMLBytes is ParseHTML over an in-memory input.
func ParseHTMLBytes(ctx context.Context, b []byte, options ...HTMLOption) (*node.Document, error) {
	return ParseHTML(ctx, bytes.NewReader(b), options...)
}

func parseHTML(ctx context.Context, r io.Reader, cfg *htmlConfig) (*node.Document, *source, error) {
	src, err := sniff(ctx, r, cfg)
	if err != nil {
		return nil, nil, err
	}
	defer src.release()

	root, err := nethtml.Parse(src)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrParseAborted, "html: %s", err)
	}

	doc := node.NewWithCapacity(cfg.capacity)
	doc.SetEncoding(src.hint.TopName())
	replaced, err := appendHTML(doc, node.DocumentID, children(root)...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build document")
	}
	src.countReplaced(ctx, replaced)
	return doc, src, nil
}

// ParseHTMLFragment parses r as the content of a div element. When the
// content is a single block element, that element becomes the root
// element of the returned document; otherwise the content is wrapped
// in a div.
func ParseHTMLFragment(ctx context.Context, r io.Reader, options ...HTMLOption) (*node.Document, error) {
	cfg := newHTMLConfig(options)
	src, err := sniff(ctx, r, cfg)
	if err != nil {
		return nil, err
	}
	defer src.release()

	div := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := nethtml.ParseFragment(src, div)
	if err != nil {
		return nil, errors.Wrapf(ErrParseAborted, "html fragment: %s", err)
	}

	doc := node.NewWithCapacity(cfg.capacity)
	doc.SetEncoding(src.hint.TopName())
	parent := node.DocumentID
	if len(nodes) != 1 || !isBlock(nodes[0]) {
		if parent, err = doc.AppendChild(node.DocumentID, node.NewHTMLElement("div")); err != nil {
			return nil, errors.Wrap(err, "failed to build fragment")
		}
	}
	replaced, err := appendHTML(doc, parent, nodes...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build fragment")
	}
	src.countReplaced(ctx, replaced)
	return doc, nil
}

// ParseHTMLFragmentString is ParseHTMLFragment over a string.
func ParseHTMLFragmentString(ctx context.Context, s string, options ...HTMLOption) (*node.Document, error) {
	return ParseHTMLFragment(ctx, strings.NewReader(s), options...)
}

func (s *source) countReplaced(ctx context.Context, n int) {
	if n == 0 {
		return
	}
	s.hint.AddErrors(n)
	getTraceLogFromContext(ctx).Info("input contained undecodable bytes",
		slog.String("encoding", s.hint.TopName()), slog.Int("replaced", n))
}

func isBlock(n *nethtml.Node) bool {
	if n.Type != nethtml.ElementNode || n.Namespace != "" {
		return false
	}
	m, ok := html.LookupTag(n.Data)
	return ok && !m.IsInline()
}

func children(n *nethtml.Node) []*nethtml.Node {
	var list []*nethtml.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		list = append(list, c)
	}
	return list
}

// appendHTML copies the parsed nodes, with their subtrees, under parent
// in doc. It returns the number of replacement characters found in
// character data.
func appendHTML(doc *node.Document, parent node.NodeID, nodes ...*nethtml.Node) (int, error) {
	type pending struct {
		n      *nethtml.Node
		parent node.NodeID
	}

	var todo stack.Stack[pending]
	for i := len(nodes) - 1; i >= 0; i-- {
		todo.Push(pending{n: nodes[i], parent: parent})
	}

	var replaced int
	for todo.Len() > 0 {
		p, _ := todo.Pop()
		data := convertHTML(p.n)
		if data == nil {
			continue
		}
		if t, ok := data.(*node.Text); ok {
			replaced += strings.Count(t.Data, "\uFFFD")
		}
		id, err := doc.AppendChild(p.parent, data)
		if err != nil {
			return replaced, err
		}
		if !node.AcceptsChildren(data) {
			continue
		}
		for c := p.n.LastChild; c != nil; c = c.PrevSibling {
			todo.Push(pending{n: c, parent: id})
		}
	}
	return replaced, nil
}

func namespaceURI(ns string) string {
	switch ns {
	case "":
		return node.NamespaceHTML
	case "svg":
		return node.NamespaceSVG
	case "math":
		return node.NamespaceMathML
	}
	return ns
}

func convertHTML(n *nethtml.Node) node.NodeData {
	switch n.Type {
	case nethtml.ElementNode:
		e := node.NewElement(node.QualName{NS: namespaceURI(n.Namespace), Local: n.Data})
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			e.SetAttr(key, a.Val)
		}
		return e
	case nethtml.TextNode, nethtml.RawNode:
		return node.NewText(n.Data)
	case nethtml.CommentNode:
		return &node.Comment{Data: n.Data}
	case nethtml.DoctypeNode:
		dt := &node.Doctype{Name: n.Data}
		for _, a := range n.Attr {
			switch a.Key {
			case "public":
				dt.PublicID = a.Val
			case "system":
				dt.SystemID = a.Val
			}
		}
		return dt
	}
	return nil
}
