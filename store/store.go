package store

import "iter"

// Store is the map surface used by the transforms and self-populating maps.
//
// Put and Delete report the previous value so callers can implement
// replace-and-return semantics without a second lookup.
type Store[K, V any] interface {
	// Get returns the value stored under key and whether it was present.
	Get(key K) (V, bool)

	// Put stores value under key, returning the value it replaced, if any.
	Put(key K, value V) (V, bool)

	// Delete removes key, returning the removed value, if any.
	Delete(key K) (V, bool)

	// Has reports whether key is present.
	Has(key K) bool

	// Len returns the number of entries.
	Len() int

	// Clear removes every entry.
	Clear()

	// All iterates over every entry in the store's iteration order.
	All() iter.Seq2[K, V]

	// Keys iterates over every key in the store's iteration order.
	Keys() iter.Seq[K]

	// Values iterates over every value in the store's iteration order.
	Values() iter.Seq[V]
}

func keysOf[K, V any](all iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range all {
			if !yield(k) {
				return
			}
		}
	}
}

func valuesOf[K, V any](all iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range all {
			if !yield(v) {
				return
			}
		}
	}
}
