package node_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lestrrat-go/marked/node"
	"github.com/stretchr/testify/require"
)

func TestDetach(t *testing.T) {
	t.Run("Fragment", func(t *testing.T) {
		f := newFixture(t)
		frag, err := f.doc.Detach(f.strike)
		require.NoError(t, err)

		require.Equal(t, []string{"strike", "#bar ", "i", "#baz"}, labels(frag.Root().Descendants()))
		require.Equal(t, 5, frag.Len(), "fragment holds the subtree and its document node")
		require.Equal(t,
			[]string{"div", "#foo ", "# qux", "p", "#end"},
			labels(f.doc.Root().Descendants()),
		)
		require.Equal(t, 10, f.doc.Len(), "detached slots stay as holes until Compact")

		for _, id := range []node.NodeID{f.strike, f.bar, f.i, f.baz} {
			_, ok := f.doc.Node(id)
			require.False(t, ok, "node %s is gone", id)
			require.Nil(t, f.doc.Data(id))
		}
		_, err = f.doc.Detach(f.strike)
		require.ErrorIs(t, err, node.ErrInvalidIndex, "a detached identifier is stale")
	})
	t.Run("Document node", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.doc.Detach(node.DocumentID)
		require.ErrorIs(t, err, node.ErrInvalidStructure)
		_, err = f.doc.Unlink(node.DocumentID)
		require.ErrorIs(t, err, node.ErrInvalidStructure)
		_, err = f.doc.Fold(node.DocumentID)
		require.ErrorIs(t, err, node.ErrInvalidStructure)
	})
	t.Run("Round trip", func(t *testing.T) {
		f := newFixture(t)
		before := labels(f.doc.Root().Descendants())

		frag, err := f.doc.Detach(f.strike)
		require.NoError(t, err)
		// put it back where it was
		require.NoError(t, f.doc.AttachBeforeSibling(f.qux, frag))
		require.Empty(t, cmp.Diff(before, labels(f.doc.Root().Descendants())))
		require.True(t, frag.IsEmpty(), "fragment is consumed")

		frag, err = f.doc.Detach(f.p)
		require.NoError(t, err)
		require.NoError(t, f.doc.AttachChild(f.div, frag))
		require.Empty(t, cmp.Diff(before, labels(f.doc.Root().Descendants())))
	})
	t.Run("AttachChild", func(t *testing.T) {
		f := newFixture(t)
		frag, err := f.doc.Detach(f.i)
		require.NoError(t, err)

		require.ErrorIs(t, f.doc.AttachChild(f.qux, frag), node.ErrInvalidStructure, "text cannot take children")
		require.ErrorIs(t, f.doc.AttachChild(f.div, f.doc), node.ErrInvalidStructure, "cannot attach to self")
		require.ErrorIs(t, f.doc.AttachChild(f.div, nil), node.ErrInvalidStructure)
		require.Equal(t, []string{"i", "#baz"}, labels(frag.Root().Descendants()), "failed attach leaves the fragment alone")

		require.NoError(t, f.doc.AttachChild(f.p, frag))
		ref, _ := f.doc.Node(f.p)
		require.Equal(t, []string{"#end", "i", "#baz"}, labels(ref.Descendants()))
	})
	t.Run("Unlink", func(t *testing.T) {
		f := newFixture(t)
		data, err := f.doc.Unlink(f.p)
		require.NoError(t, err)
		require.Equal(t, "p", label(data))
		require.Equal(t, []string{"div", "#foo ", "strike", "#bar ", "i", "#baz", "# qux"}, labels(f.doc.Root().Descendants()))
	})
}

func TestFold(t *testing.T) {
	f := newFixture(t)
	data, err := f.doc.Fold(f.strike)
	require.NoError(t, err)
	require.Equal(t, "strike", label(data))

	div, _ := f.doc.Node(f.div)
	require.Equal(t, []string{"#foo ", "#bar ", "i", "# qux", "p"}, labels(div.Children()))
	for n := range f.doc.Root().Descendants() {
		require.NotEqual(t, "strike", label(n.Data()), "folded data is unreachable")
	}

	bar, _ := f.doc.Node(f.bar)
	parent, ok := bar.Parent()
	require.True(t, ok)
	require.Equal(t, f.div, parent.ID(), "children are reparented")

	// folding a node without children just removes it
	p, _ := f.doc.Node(f.p)
	_, err = f.doc.Unlink(f.end)
	require.NoError(t, err)
	_, err = f.doc.Fold(p.ID())
	require.NoError(t, err)
	require.Equal(t, []string{"#foo ", "#bar ", "i", "# qux"}, labels(div.Children()))
}

func TestCompact(t *testing.T) {
	f := newFixture(t)
	_, err := f.doc.Detach(f.strike)
	require.NoError(t, err)
	_, err = f.doc.AppendChild(f.p, node.NewText("!"))
	require.NoError(t, err)

	before := labels(f.doc.Root().Descendants())
	require.Equal(t, 11, f.doc.Len())

	f.doc.Compact()
	require.Equal(t, 7, f.doc.Len(), "holes are reclaimed")
	require.Empty(t, cmp.Diff(before, labels(f.doc.Root().Descendants())), "content survives in order")

	// identifiers follow document order after Compact
	want := node.DocumentID
	for n := range f.doc.Root().Descendants() {
		want++
		require.Equal(t, want, n.ID())
	}

	_, ok := f.doc.Node(f.end)
	require.False(t, ok, "identifier beyond the compacted range is invalid")
	require.ErrorIs(t, f.doc.FilterAt(f.end, node.DepthFirst, func(node.NodeRef, *node.NodeData) node.Action {
		return node.Continue
	}), node.ErrInvalidIndex)

	// a second Compact has nothing to do
	f.doc.Compact()
	require.Equal(t, 7, f.doc.Len())
	require.Empty(t, cmp.Diff(before, labels(f.doc.Root().Descendants())))
}

func TestClone(t *testing.T) {
	t.Run("DeepClone", func(t *testing.T) {
		f := newFixture(t)
		src, _ := f.doc.Node(f.strike)
		want := append([]string{"strike"}, labels(src.Descendants())...)

		clone, err := f.doc.DeepClone(f.strike)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(want, labels(clone.Root().Descendants())))

		whole, err := f.doc.DeepClone(node.DocumentID)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(labels(f.doc.Root().Descendants()), labels(whole.Root().Descendants())))
	})
	t.Run("DeepClone skips holes", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.doc.Unlink(f.i)
		require.NoError(t, err)
		clone, err := f.doc.DeepClone(node.DocumentID)
		require.NoError(t, err)
		require.Equal(t, 8, clone.Len(), "clone is dense")
		require.Equal(t, labels(f.doc.Root().Descendants()), labels(clone.Root().Descendants()))
	})
	t.Run("Independent data", func(t *testing.T) {
		f := newFixture(t)
		div := f.doc.Data(f.div).(*node.Element)
		div.SetAttr("class", "a")

		clone, err := f.doc.DeepClone(f.div)
		require.NoError(t, err)
		croot, ok := clone.RootElement()
		require.True(t, ok)
		celem, _ := croot.AsElement()
		celem.SetAttr("class", "b")

		v, _ := div.Attr("class")
		require.Equal(t, "a", v, "clone does not share attributes")
	})
	t.Run("AppendDeepClone", func(t *testing.T) {
		f := newFixture(t)
		dest := node.New()
		body, err := dest.AppendChild(node.DocumentID, node.NewHTMLElement("body"))
		require.NoError(t, err)

		require.NoError(t, f.doc.AppendDeepClone(f.p, dest, body))
		require.Equal(t, []string{"body", "p", "#end"}, labels(dest.Root().Descendants()))

		// into the same document, below the node being copied
		require.NoError(t, f.doc.AppendDeepClone(f.p, f.doc, f.p))
		p, _ := f.doc.Node(f.p)
		require.Equal(t, []string{"#end", "p", "#end"}, labels(p.Descendants()))

		require.ErrorIs(t, f.doc.AppendDeepClone(f.p, dest, node.NodeID(99)), node.ErrInvalidIndex)
		require.ErrorIs(t, f.doc.AppendDeepClone(f.p, nil, body), node.ErrInvalidStructure)
	})
	t.Run("BulkClone", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.doc.Unlink(f.i)
		require.NoError(t, err)

		clone := f.doc.BulkClone()
		require.Equal(t, f.doc.Len(), clone.Len(), "holes are kept")
		require.Equal(t, labels(f.doc.Root().Descendants()), labels(clone.Root().Descendants()))

		// identifiers are unchanged
		ref, ok := clone.Node(f.qux)
		require.True(t, ok)
		require.Equal(t, "# qux", label(ref.Data()))

		clone.Data(f.qux).(*node.Text).Data = "changed"
		require.Equal(t, " qux", f.doc.Data(f.qux).(*node.Text).Data)
	})
}
