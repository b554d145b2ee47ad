package store

import (
	"iter"
	"slices"
)

type sortedEntry[K, V any] struct {
	key   K
	value V
}

// Sorted is a [Store] whose entries are kept ordered by a comparator.
//
// cmp must return a negative number when a < b, zero when a == b and a
// positive number when a > b, like [strings.Compare] or [cmp.Compare]. Two
// keys for which cmp returns zero are the same key.
//
// Iteration visits a snapshot taken when the iteration starts, so the store
// may be modified while it is being ranged over.
type Sorted[K, V any] struct {
	cmp     func(a, b K) int
	entries []sortedEntry[K, V]
}

var _ Store[string, int] = (*Sorted[string, int])(nil)

// NewSorted returns an empty Sorted store ordered by cmp.
// It panics if cmp is nil.
func NewSorted[K, V any](cmp func(a, b K) int) *Sorted[K, V] {
	if cmp == nil {
		panic("store: nil comparator")
	}
	return &Sorted[K, V]{cmp: cmp}
}

func (s *Sorted[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(s.entries, key, func(e sortedEntry[K, V], k K) int {
		return s.cmp(e.key, k)
	})
}

// Get returns the value stored under key.
func (s *Sorted[K, V]) Get(key K) (V, bool) {
	if i, ok := s.search(key); ok {
		return s.entries[i].value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key and returns the replaced value, if any.
// When an equal key is already present its original key value is retained.
func (s *Sorted[K, V]) Put(key K, value V) (V, bool) {
	i, ok := s.search(key)
	if ok {
		prev := s.entries[i].value
		s.entries[i].value = value
		return prev, true
	}
	s.entries = slices.Insert(s.entries, i, sortedEntry[K, V]{key: key, value: value})
	var zero V
	return zero, false
}

// Delete removes key and returns the removed value, if any.
func (s *Sorted[K, V]) Delete(key K) (V, bool) {
	i, ok := s.search(key)
	if !ok {
		var zero V
		return zero, false
	}
	prev := s.entries[i].value
	s.entries = slices.Delete(s.entries, i, i+1)
	return prev, true
}

// Has reports whether key is present.
func (s *Sorted[K, V]) Has(key K) bool {
	_, ok := s.search(key)
	return ok
}

// Len returns the number of entries.
func (s *Sorted[K, V]) Len() int { return len(s.entries) }

// Clear removes every entry.
func (s *Sorted[K, V]) Clear() { s.entries = nil }

// All iterates over the entries in ascending key order.
func (s *Sorted[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range slices.Clone(s.entries) {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys iterates over the keys in ascending order.
func (s *Sorted[K, V]) Keys() iter.Seq[K] { return keysOf(s.All()) }

// Values iterates over the values in ascending key order.
func (s *Sorted[K, V]) Values() iter.Seq[V] { return valuesOf(s.All()) }
