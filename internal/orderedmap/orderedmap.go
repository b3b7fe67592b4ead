// Package orderedmap provides a map that remembers insertion order.
package orderedmap

import (
	"iter"
	"slices"
)

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Store sets key to value, keeping the original position of an existing
// key. It returns the previous value if there was one.
func (m *Map[K, V]) Store(key K, value V) (V, bool) {
	prev, exists := m.keys[key]
	if !exists {
		m.entries = append(m.entries, key)
	}
	m.keys[key] = value
	return prev, exists
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

// Delete removes key, preserving the order of the remaining entries.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	v, ok := m.keys[key]
	if !ok {
		return v, false
	}
	delete(m.keys, key)
	if i := slices.Index(m.entries, key); i >= 0 {
		m.entries = slices.Delete(m.entries, i, i+1)
	}
	return v, true
}

// DeleteFunc removes every entry for which del returns true and reports
// how many were removed.
func (m *Map[K, V]) DeleteFunc(del func(K, V) bool) int {
	before := len(m.entries)
	m.entries = slices.DeleteFunc(m.entries, func(k K) bool {
		if del(k, m.keys[k]) {
			delete(m.keys, k)
			return true
		}
		return false
	})
	return before - len(m.entries)
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		entries: slices.Clone(m.entries),
		keys:    make(map[K]V, len(m.keys)),
	}
	for k, v := range m.keys {
		c.keys[k] = v
	}
	return c
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
