package marked_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lestrrat-go/marked"
	"github.com/lestrrat-go/marked/node"
	"github.com/lestrrat-go/marked/s11n"
	"github.com/lestrrat-go/pdebug"
	"github.com/stretchr/testify/require"
)

func TestParseXML(t *testing.T) {
	ctx := context.Background()

	t.Run("Namespaces", func(t *testing.T) {
		const input = `<?xml version="1.0"?>
<m:root xmlns:m="https://github.com/lestrrat-go/marked" xmlns="urn:default">
  <m:child xml:lang="en">foo</m:child>
  <plain a="1"/>
</m:root>`
		doc, err := marked.ParseXMLBytes(ctx, []byte(input))
		require.NoError(t, err, "ParseXMLBytes should succeed for '%s'", input)
		if pdebug.Enabled {
			pdebug.Dump(doc)
		}
		require.Equal(t, "utf-8", doc.Encoding())

		root, ok := doc.RootElement()
		require.True(t, ok)
		e, _ := root.AsElement()
		require.Equal(t, node.QualName{NS: "https://github.com/lestrrat-go/marked", Prefix: "m", Local: "root"}, e.Name)

		kids := make([]*node.Element, 0, 2)
		for c := range root.Children() {
			ce, ok := c.AsElement()
			require.True(t, ok, "blank text should be dropped")
			kids = append(kids, ce)
		}
		require.Len(t, kids, 2)
		require.Equal(t, "m", kids[0].Name.Prefix)
		lang, ok := kids[0].Attr("xml:lang")
		require.True(t, ok)
		require.Equal(t, "en", lang)
		require.Equal(t, "urn:default", kids[1].Name.NS)
		require.Equal(t, "", kids[1].Name.Prefix)

		var sb strings.Builder
		d := s11n.Dumper{Mode: s11n.XMLMode}
		require.NoError(t, d.DumpDoc(&sb, doc))
		require.Equal(t, `<?xml version="1.0"?>
<m:root xmlns:m="https://github.com/lestrrat-go/marked" xmlns="urn:default"><m:child xml:lang="en">foo</m:child><plain a="1"/></m:root>
`, sb.String())
	})
	t.Run("Keep blanks", func(t *testing.T) {
		doc, err := marked.ParseXMLBytes(ctx, []byte("<a>\n  <b/>\n</a>"), marked.WithKeepBlanks(true))
		require.NoError(t, err)
		root, ok := doc.RootElement()
		require.True(t, ok)
		var types []node.NodeType
		for c := range root.Children() {
			types = append(types, c.Type())
		}
		require.Equal(t, []node.NodeType{node.TextNodeType, node.ElementNodeType, node.TextNodeType}, types)
	})
	t.Run("Character data is merged", func(t *testing.T) {
		doc, err := marked.ParseXMLBytes(ctx, []byte("<a>x<![CDATA[<y>]]>z</a>"))
		require.NoError(t, err)
		root, _ := doc.RootElement()
		require.Equal(t, 1, len(collect(root)))
		require.Equal(t, "x<y>z", root.Text())
	})
	t.Run("Other nodes", func(t *testing.T) {
		doc, err := marked.ParseXMLBytes(ctx, []byte(`<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE a><a><!--c--><?pi data?></a>`))
		require.NoError(t, err)
		first, ok := doc.Root().FirstChild()
		require.True(t, ok)
		require.Equal(t, "a", first.Data().(*node.Doctype).Name)

		root, _ := doc.RootElement()
		kids := collect(root)
		require.Len(t, kids, 2)
		require.Equal(t, "c", kids[0].Data().(*node.Comment).Data)
		pi := kids[1].Data().(*node.ProcessingInstruction)
		require.Equal(t, "pi", pi.Target)
		require.Equal(t, "data", pi.Data)
	})
	t.Run("Declared encoding other than UTF-8", func(t *testing.T) {
		_, err := marked.ParseXMLBytes(ctx, []byte(`<?xml version="1.0" encoding="ISO-8859-1"?><a/>`))
		require.ErrorIs(t, err, marked.ErrEncodingUnsupported)
	})
	t.Run("Malformed", func(t *testing.T) {
		for _, input := range []string{`<a><b></a>`, `<a>`, `</a>`, `<a b=c/>`} {
			_, err := marked.ParseXMLBytes(ctx, []byte(input))
			require.ErrorIs(t, err, marked.ErrParseAborted, "input %q", input)
		}
	})
}

func collect(n node.NodeRef) []node.NodeRef {
	var list []node.NodeRef
	for c := range n.Children() {
		list = append(list, c)
	}
	return list
}
