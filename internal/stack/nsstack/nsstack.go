// Package nsstack tracks XML namespace prefix bindings while a document
// is being built.
package nsstack

import "github.com/lestrrat-go/marked/internal/stack"

type binding struct {
	prefix string
	uri    string
}

// Stack holds the bindings currently in scope. Each element scope pushes
// its declarations and pops the same number when it ends.
type Stack struct {
	items stack.Stack[binding]
}

func New() *Stack {
	return &Stack{}
}

func (s *Stack) Push(prefix, uri string) {
	s.items.Push(binding{prefix: prefix, uri: uri})
}

func (s *Stack) Pop(n int) {
	s.items.Discard(n)
}

// Lookup returns the URI bound to prefix, or "" when unbound.
func (s *Stack) Lookup(prefix string) string {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].prefix == prefix {
			return s.items[i].uri
		}
	}
	return ""
}

// PrefixFor returns the innermost prefix bound to uri that has not been
// rebound to another URI further in. ok is false when no usable binding
// exists.
func (s *Stack) PrefixFor(uri string) (string, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		item := s.items[i]
		if item.uri != uri {
			continue
		}
		if s.Lookup(item.prefix) == uri {
			return item.prefix, true
		}
	}
	return "", false
}
