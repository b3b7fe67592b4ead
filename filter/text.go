package filter

import (
	"strings"

	"github.com/lestrrat-go/marked/html"
	"github.com/lestrrat-go/marked/node"
)

// TextNormalize merges a text node with the text siblings following it,
// then cleans up the result. Outside of pre elements, runs of white
// space and control characters become a single space, dropped entirely
// at the edges of a block. Inside pre, control characters are removed
// and white space is kept. Text left empty is detached.
func TextNormalize(pos node.NodeRef, data *node.NodeData) node.Action {
	t, ok := (*data).(*node.Text)
	if !ok {
		return node.Continue
	}

	s := t.Data
	next, hasNext := pos.NextSibling()
	if hasNext {
		if _, ok := next.AsText(); ok {
			var sb strings.Builder
			sb.WriteString(s)
			for hasNext {
				nt, ok := next.AsText()
				if !ok {
					break
				}
				sb.WriteString(nt.Data)
				after, more := next.NextSibling()
				_, _ = pos.Document().Unlink(next.ID())
				next, hasNext = after, more
			}
			s = sb.String()
		}
	}

	if inPre(pos) {
		s = strings.Map(dropControl, s)
	} else {
		var blockParent bool
		if parent, ok := pos.Parent(); ok {
			blockParent = html.IsBlock(parent.Data())
		}
		prev, hasPrev := pos.PrevSibling()
		trimLeft := blockParent && (!hasPrev || html.IsBlock(prev.Data()))
		trimRight := blockParent && (!hasNext || html.IsBlock(next.Data()))
		s = collapse(s, trimLeft, trimRight)
	}

	if s == "" {
		return node.Detach
	}
	t.Data = s
	return node.Continue
}

func inPre(n node.NodeRef) bool {
	for a := range n.Ancestors() {
		if a.Is("pre") {
			return true
		}
	}
	return false
}

// collapse replaces each run of white space and control characters in
// s with one space, dropping the leading and trailing runs on request.
func collapse(s string, trimLeft, trimRight bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	pending := false
	for _, r := range s {
		if isSpaceOrControl(r) {
			pending = true
			continue
		}
		if pending && (sb.Len() > 0 || !trimLeft) {
			sb.WriteByte(' ')
		}
		pending = false
		sb.WriteRune(r)
	}
	if pending && !trimRight && (sb.Len() > 0 || !trimLeft) {
		sb.WriteByte(' ')
	}
	return sb.String()
}

func isControl(r rune) bool {
	switch {
	case r < 0x20, r == 0x7F, r >= 0x80 && r <= 0x9F:
		return true
	}
	switch r {
	case 0xFEFF, 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

func isSpaceOrControl(r rune) bool {
	if r == ' ' || isControl(r) || r >= 0x2000 && r <= 0x200B {
		return true
	}
	switch r {
	case 0xA0, 0x1680, 0x180E, 0x2028, 0x2029, 0x202F, 0x205F, 0x2060, 0x3000:
		return true
	}
	return false
}

// dropControl removes control characters but keeps tabs and line
// breaks, for use with strings.Map.
func dropControl(r rune) rune {
	switch r {
	case '\t', '\n', '\r':
		return r
	}
	if isControl(r) {
		return -1
	}
	return r
}
