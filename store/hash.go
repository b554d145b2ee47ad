package store

import (
	"iter"
	"maps"
)

// Hash is a [Store] backed by a plain Go map.
//
// Because Hash is a map type, converting in either direction shares the
// underlying storage:
//
//	m := map[string]int{"a": 1}
//	h := store.Hash[string, int](m)
//	h.Put("b", 2) // m now has two entries
type Hash[K comparable, V any] map[K]V

var _ Store[string, int] = Hash[string, int](nil)

// NewHash returns an empty Hash.
func NewHash[K comparable, V any]() Hash[K, V] {
	return make(Hash[K, V])
}

// Get returns the value stored under key.
func (h Hash[K, V]) Get(key K) (V, bool) {
	v, ok := h[key]
	return v, ok
}

// Put stores value under key and returns the replaced value, if any.
func (h Hash[K, V]) Put(key K, value V) (V, bool) {
	prev, ok := h[key]
	h[key] = value
	return prev, ok
}

// Delete removes key and returns the removed value, if any.
func (h Hash[K, V]) Delete(key K) (V, bool) {
	prev, ok := h[key]
	if ok {
		delete(h, key)
	}
	return prev, ok
}

// Has reports whether key is present.
func (h Hash[K, V]) Has(key K) bool {
	_, ok := h[key]
	return ok
}

// Len returns the number of entries.
func (h Hash[K, V]) Len() int { return len(h) }

// Clear removes every entry.
func (h Hash[K, V]) Clear() { clear(h) }

// All iterates over the entries in unspecified order.
func (h Hash[K, V]) All() iter.Seq2[K, V] { return maps.All(h) }

// Keys iterates over the keys in unspecified order.
func (h Hash[K, V]) Keys() iter.Seq[K] { return maps.Keys(h) }

// Values iterates over the values in unspecified order.
func (h Hash[K, V]) Values() iter.Seq[V] { return maps.Values(h) }
