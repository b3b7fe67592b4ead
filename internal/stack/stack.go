// Package stack implements the small LIFO containers used while copying
// and building trees.
package stack

// Stack is a LIFO of T. The zero value is ready to use.
type Stack[T any] []T

func (s *Stack[T]) Push(items ...T) {
	*s = append(*s, items...)
}

// Pop removes and returns the top item. ok is false on an empty stack.
func (s *Stack[T]) Pop() (item T, ok bool) {
	l := len(*s)
	if l == 0 {
		return item, false
	}
	item = (*s)[l-1]
	var zero T
	(*s)[l-1] = zero
	*s = (*s)[:l-1]
	return item, true
}

// Top returns the top item without removing it.
func (s Stack[T]) Top() (item T, ok bool) {
	if l := len(s); l > 0 {
		return s[l-1], true
	}
	return item, false
}

// Discard drops up to n items and releases memory when the stack has
// shrunk well below its capacity.
func (s *Stack[T]) Discard(n int) {
	if n <= 0 {
		return
	}
	l := len(*s)
	if n > l {
		n = l
	}
	var zero T
	for i := l - n; i < l; i++ {
		(*s)[i] = zero
	}
	*s = (*s)[:l-n]

	if c := cap(*s); c > 20 && c > len(*s)*2 {
		s.realloc()
	}
}

func (s *Stack[T]) realloc() {
	*s = append(Stack[T](nil), *s...)
}

func (s Stack[T]) Len() int {
	return len(s)
}
