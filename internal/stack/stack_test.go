package stack_test

import (
	"testing"

	"github.com/lestrrat-go/marked/internal/stack"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Run("Push and Pop", func(t *testing.T) {
		var s stack.Stack[int]
		_, ok := s.Pop()
		require.False(t, ok, "empty stack has nothing to pop")

		s.Push(1, 2, 3)
		require.Equal(t, 3, s.Len())

		top, ok := s.Top()
		require.True(t, ok)
		require.Equal(t, 3, top)

		for _, want := range []int{3, 2, 1} {
			v, ok := s.Pop()
			require.True(t, ok)
			require.Equal(t, want, v)
		}
		require.Equal(t, 0, s.Len())
	})
	t.Run("Discard shrinks", func(t *testing.T) {
		var s stack.Stack[int]
		for i := range 100 {
			s.Push(i)
		}
		s.Discard(95)
		require.Equal(t, 5, s.Len())
		require.LessOrEqual(t, cap(s), 20, "capacity released after a large discard")

		s.Discard(10)
		require.Equal(t, 0, s.Len(), "discarding more than Len empties the stack")
	})
}
