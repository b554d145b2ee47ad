package mass

import (
	"fmt"
	"iter"
	"maps"
	"sync"
)

// ReadOnlyMap is an immutable view of a map populated once by [Snapshot].
// The zero value is an empty map.
type ReadOnlyMap[K comparable, V any] struct {
	m map[K]V
}

// Snapshot hands a fresh, mutable map to fill and returns a read-only view
// of the result. fill is called exactly once and the map it populated is not
// reachable by anything else afterwards, unless fill leaked it.
//
//	weekdays := mass.Snapshot(func(m map[string]int) {
//	    m["mon"] = 1
//	    m["tue"] = 2
//	})
func Snapshot[K comparable, V any](fill func(map[K]V)) ReadOnlyMap[K, V] {
	m := make(map[K]V)
	if fill != nil {
		fill(m)
	}
	return ReadOnlyMap[K, V]{m: m}
}

// OnceSnapshot returns a function that builds the snapshot on its first call
// and returns the same snapshot on every later call. Use it for package-level
// default maps:
//
//	var defaults = mass.OnceSnapshot(func(m map[string]int) { m["retries"] = 3 })
//
//	n, _ := defaults().Get("retries")
//
// It is safe to call the returned function from multiple goroutines.
func OnceSnapshot[K comparable, V any](fill func(map[K]V)) func() ReadOnlyMap[K, V] {
	return sync.OnceValue(func() ReadOnlyMap[K, V] { return Snapshot(fill) })
}

// Get returns the value stored under key.
func (r ReadOnlyMap[K, V]) Get(key K) (V, bool) {
	v, ok := r.m[key]
	return v, ok
}

// Has reports whether key is present.
func (r ReadOnlyMap[K, V]) Has(key K) bool {
	_, ok := r.m[key]
	return ok
}

// Len returns the number of entries.
func (r ReadOnlyMap[K, V]) Len() int { return len(r.m) }

// All iterates over the entries in unspecified order.
func (r ReadOnlyMap[K, V]) All() iter.Seq2[K, V] { return maps.All(r.m) }

// Keys iterates over the keys in unspecified order.
func (r ReadOnlyMap[K, V]) Keys() iter.Seq[K] { return maps.Keys(r.m) }

// Clone returns a mutable copy of the entries.
func (r ReadOnlyMap[K, V]) Clone() map[K]V {
	out := make(map[K]V, len(r.m))
	maps.Copy(out, r.m)
	return out
}

// String formats the entries like a map.
func (r ReadOnlyMap[K, V]) String() string { return fmt.Sprintf("%v", r.m) }
