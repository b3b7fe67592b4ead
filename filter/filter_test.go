package filter_test

import (
	"context"
	"strings"
	"testing"

	"github.com/lestrrat-go/marked"
	"github.com/lestrrat-go/marked/filter"
	"github.com/lestrrat-go/marked/node"
	"github.com/lestrrat-go/marked/s11n"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *node.Document {
	t.Helper()
	doc, err := marked.ParseHTMLFragmentString(context.Background(), input)
	require.NoError(t, err, "ParseHTMLFragmentString should succeed for '%s'", input)
	return doc
}

func serialize(t *testing.T, doc *node.Document) string {
	t.Helper()
	s, err := s11n.String(doc)
	require.NoError(t, err, "s11n.String should succeed")
	return s
}

func TestDetachBannedElements(t *testing.T) {
	const input = `<div><p>keep</p><script>alert(1)</script><form><input name=q><button>go</button></form><custom-tag>x</custom-tag></div>`

	t.Run("Banned and unknown elements are removed", func(t *testing.T) {
		doc := parse(t, input)
		doc.Filter(filter.DetachBannedElements)
		require.Equal(t, `<div><p>keep</p><form></form></div>`, serialize(t, doc))
	})
	t.Run("Removed subtrees are not visited", func(t *testing.T) {
		doc := parse(t, input)
		var texts []string
		doc.Filter(filter.Chain(filter.DetachBannedElements, func(_ node.NodeRef, data *node.NodeData) node.Action {
			if text, ok := (*data).(*node.Text); ok {
				texts = append(texts, text.Data)
			}
			return node.Continue
		}))
		require.Equal(t, []string{"keep"}, texts)
	})
	t.Run("Breadth first", func(t *testing.T) {
		doc := parse(t, input)
		doc.FilterBreadth(filter.DetachBannedElements)
		require.Equal(t, `<div><p>keep</p><form></form></div>`, serialize(t, doc))
	})
	t.Run("Foreign elements", func(t *testing.T) {
		doc := parse(t, `<div><svg><circle r="1"/></svg>text</div>`)
		doc.Filter(filter.DetachBannedElements)
		require.Equal(t, `<div>text</div>`, serialize(t, doc))
	})
}

func TestRetainBasicAttributes(t *testing.T) {
	doc := parse(t, `<div><p style="color:red" title="t" onclick="x()">a</p><a href="/x" style="s" target="_blank" id="i">l</a><custom-tag style="kept">c</custom-tag></div>`)
	doc.Filter(filter.RetainBasicAttributes)
	require.Equal(t, `<div><p title="t">a</p><a href="/x" id="i">l</a><custom-tag style="kept">c</custom-tag></div>`, serialize(t, doc))
}

func TestFoldEmptyInline(t *testing.T) {
	const input = `<div><p>a<b></b><i> <!--c--> </i><span><em></em></span><a href="#"><img src="x.png"></a>z<strong>keep</strong><br></p></div>`
	const expected = `<div><p>a <!--c--> <a href="#"><img src="x.png"></a>z<strong>keep</strong><br></p></div>`

	t.Run("Depth first", func(t *testing.T) {
		doc := parse(t, input)
		doc.Filter(filter.FoldEmptyInline)
		require.Equal(t, expected, serialize(t, doc))
	})
	t.Run("Breadth first", func(t *testing.T) {
		doc := parse(t, input)
		doc.FilterBreadth(filter.FoldEmptyInline)
		require.Equal(t, expected, serialize(t, doc))
	})
	t.Run("Line breaks do not count as content", func(t *testing.T) {
		doc := parse(t, `<div><b><br></b>x</div>`)
		doc.Filter(filter.FoldEmptyInline)
		require.Equal(t, `<div><br>x</div>`, serialize(t, doc))
	})
}

func TestDetachComments(t *testing.T) {
	doc, err := marked.ParseXMLBytes(context.Background(), []byte(`<a><!--c--><?pi x?><b/></a>`))
	require.NoError(t, err)
	require.NoError(t, filter.Apply(doc, node.DocumentID, filter.DetachComments, filter.DetachProcessingInstructions))

	var sb strings.Builder
	d := s11n.Dumper{Mode: s11n.XMLMode}
	require.NoError(t, d.DumpDoc(&sb, doc))
	require.Equal(t, "<?xml version=\"1.0\"?>\n<a><b/></a>\n", sb.String())
}

func TestXmpToPre(t *testing.T) {
	doc := parse(t, `<div><xmp>a<b</xmp><listing>x</listing></div>`)
	doc.Filter(filter.XmpToPre)
	require.Equal(t, `<div><pre>a&lt;b</pre><pre>x</pre></div>`, serialize(t, doc))
}

func TestApply(t *testing.T) {
	const input = `<div style="x"><script>x</script><p class="c">  a  <span></span>  b </p></div>`
	filters := []node.FilterFunc{
		filter.DetachBannedElements,
		filter.RetainBasicAttributes,
		filter.FoldEmptyInline,
		filter.TextNormalize,
	}

	t.Run("Whole document", func(t *testing.T) {
		doc := parse(t, input)
		require.NoError(t, filter.Apply(doc, node.DocumentID, filters...))
		require.Equal(t, `<div><p>a b</p></div>`, serialize(t, doc))

		// a second application changes nothing
		require.NoError(t, filter.Apply(doc, node.DocumentID, filters...))
		require.Equal(t, `<div><p>a b</p></div>`, serialize(t, doc))
	})
	t.Run("Subtree", func(t *testing.T) {
		doc := parse(t, input)
		p, ok := doc.Root().Find(func(n node.NodeRef) bool { return n.Is("p") })
		require.True(t, ok)
		require.NoError(t, filter.Apply(doc, p.ID(), filters...))
		require.Equal(t, `<div style="x"><script>x</script><p>a b</p></div>`, serialize(t, doc))
	})
	t.Run("Invalid start", func(t *testing.T) {
		doc := parse(t, input)
		require.ErrorIs(t, filter.Apply(doc, node.NodeID(999), filters...), node.ErrInvalidIndex)
	})
}

func TestChain(t *testing.T) {
	var calls []string
	record := func(name string, act node.Action) node.FilterFunc {
		return func(_ node.NodeRef, data *node.NodeData) node.Action {
			if _, ok := (*data).(*node.Element); ok {
				calls = append(calls, name)
			}
			return act
		}
	}

	doc := parse(t, `<p>x</p>`)
	doc.Filter(filter.Chain(record("first", node.Continue), record("second", node.Detach), record("third", node.Continue)))
	require.Equal(t, []string{"first", "second"}, calls)
	_, ok := doc.Root().FirstChild()
	require.False(t, ok, "the root element should be detached")

	t.Run("Hole", func(t *testing.T) {
		doc := parse(t, `<p>x<b>y</b></p>`)
		doc.Filter(filter.Chain(func(pos node.NodeRef, data *node.NodeData) node.Action {
			if pos.Is("b") {
				*data = node.Hole{}
			}
			return node.Continue
		}, filter.RetainBasicAttributes))
		require.Equal(t, `<p>x</p>`, serialize(t, doc))
	})
}
