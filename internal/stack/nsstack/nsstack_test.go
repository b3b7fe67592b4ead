package nsstack_test

import (
	"testing"

	"github.com/lestrrat-go/marked/internal/stack/nsstack"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := nsstack.New()
	s.Push("a", "urn:one")
	s.Push("b", "urn:two")

	prefix, ok := s.PrefixFor("urn:two")
	require.True(t, ok)
	require.Equal(t, "b", prefix)

	// rebinding "a" shadows the outer declaration
	s.Push("a", "urn:three")
	_, ok = s.PrefixFor("urn:one")
	require.False(t, ok, "shadowed binding is not usable")
	require.Equal(t, "urn:three", s.Lookup("a"))

	s.Pop(1)
	prefix, ok = s.PrefixFor("urn:one")
	require.True(t, ok)
	require.Equal(t, "a", prefix)
	require.Equal(t, "", s.Lookup("zzz"))
}
