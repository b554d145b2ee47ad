package nnmap

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/hasbyte1/go-mass-utils/mass"
	"github.com/hasbyte1/go-mass-utils/store"
)

// Map is a self-populating map. A [Map.Get] for a missing key evaluates the
// bound evaluator, stores the result under that key and returns it. Every
// other operation is delegated to the backing [store.Store] unchanged.
//
// A Map is not safe for concurrent use; see [Locked].
type Map[K, V any] struct {
	store store.Store[K, V]
	eval  mass.Evaluator[K, V]
}

// Entry is a single key/value pair of a [Map].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors: keyed
// ─────────────────────────────────────────────────────────────────────────────

// NewWithStore returns a Map that fills s by evaluating eval on missing keys.
// The Map takes ownership of s. It panics if s or eval is nil.
func NewWithStore[K, V any](s store.Store[K, V], eval mass.Evaluator[K, V]) *Map[K, V] {
	if s == nil {
		panic("nnmap: nil store")
	}
	if eval == nil {
		panic("nnmap: nil evaluator")
	}
	return &Map[K, V]{store: s, eval: eval}
}

// New returns a hash-backed Map with no defined iteration order.
func New[K comparable, V any](eval mass.Evaluator[K, V]) *Map[K, V] {
	return NewWithStore[K, V](store.NewHash[K, V](), eval)
}

// NewLinked returns a Map that iterates in insertion order. Keys
// materialized by Get count as inserted at the time of the Get.
func NewLinked[K comparable, V any](eval mass.Evaluator[K, V]) *Map[K, V] {
	return NewWithStore[K, V](store.NewLinked[K, V](), eval)
}

// NewSorted returns a Map that iterates in the key order defined by compare.
func NewSorted[K, V any](eval mass.Evaluator[K, V], compare func(a, b K) int) *Map[K, V] {
	return NewWithStore[K, V](store.NewSorted[K, V](compare), eval)
}

// NewOrdered is [NewSorted] using the natural order of K.
func NewOrdered[K cmp.Ordered, V any](eval mass.Evaluator[K, V]) *Map[K, V] {
	return NewSorted(eval, cmp.Compare[K])
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors: simple
// ─────────────────────────────────────────────────────────────────────────────

func fromLazy[K, V any](initializer mass.Lazy[V]) mass.Evaluator[K, V] {
	if initializer == nil {
		panic("nnmap: nil initializer")
	}
	return mass.FromLazy[K](initializer)
}

// NewSimple returns a hash-backed Map that calls initializer for every missing
// key, whichever key it is. It runs once per distinct missing key, so a fresh
// value is stored under each key unless initializer itself returns shared state.
//
//	counters := nnmap.NewSimple[string](func() (*int, error) { return new(int), nil })
//	*counters.MustGet("hits")++
func NewSimple[K comparable, V any](initializer mass.Lazy[V]) *Map[K, V] {
	return New(fromLazy[K](initializer))
}

// NewSimpleLinked is [NewSimple] iterating in insertion order.
func NewSimpleLinked[K comparable, V any](initializer mass.Lazy[V]) *Map[K, V] {
	return NewLinked(fromLazy[K](initializer))
}

// NewSimpleSorted is [NewSimple] iterating in the key order defined by compare.
func NewSimpleSorted[K, V any](initializer mass.Lazy[V], compare func(a, b K) int) *Map[K, V] {
	return NewSorted(fromLazy[K](initializer), compare)
}

// NewNested returns a Map whose missing slots are filled with fresh, empty
// inner maps, so two-level structures can be written without presence checks:
//
//	byDay := nnmap.NewNested[string, string, int]()
//	byDay.MustGet("mon")["alice"]++
func NewNested[K1, K2 comparable, V any]() *Map[K1, map[K2]V] {
	return NewSimple[K1, map[K2]V](func() (map[K2]V, error) { return make(map[K2]V), nil })
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key, materializing it first when the
// key is missing. Once Get returns without error, [Map.ContainsKey] reports
// true for key.
//
// If the evaluator fails its error is returned unchanged and the key stays
// absent; the next Get evaluates again.
func (m *Map[K, V]) Get(key K) (V, error) {
	return mass.GetOrInit(m.store, key, key, m.eval)
}

// MustGet is [Map.Get] for evaluators that cannot fail. It panics if the
// evaluator fails.
func (m *Map[K, V]) MustGet(key K) V {
	v, err := m.Get(key)
	if err != nil {
		panic(fmt.Sprintf("nnmap: materializing %v: %v", key, err))
	}
	return v
}

// ContainsKey reports whether key is present. It never materializes.
func (m *Map[K, V]) ContainsKey(key K) bool { return m.store.Has(key) }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.store.Len() }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.store.Len() == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Put stores value under key and returns the replaced value, if any.
func (m *Map[K, V]) Put(key K, value V) (V, bool) { return m.store.Put(key, value) }

// PutAll stores every entry of entries, in order.
func (m *Map[K, V]) PutAll(entries iter.Seq2[K, V]) {
	for k, v := range entries {
		m.store.Put(k, v)
	}
}

// Remove deletes key and returns the removed value, if any.
func (m *Map[K, V]) Remove(key K) (V, bool) { return m.store.Delete(key) }

// Clear removes every entry. The evaluator stays bound.
func (m *Map[K, V]) Clear() { m.store.Clear() }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All iterates over the entries in the backing store's order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.store.All() }

// Keys iterates over the keys in the backing store's order.
func (m *Map[K, V]) Keys() iter.Seq[K] { return m.store.Keys() }

// Values iterates over the values in the backing store's order.
func (m *Map[K, V]) Values() iter.Seq[V] { return m.store.Values() }

// Entries returns a snapshot of the entries in the backing store's order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.store.Len())
	for k, v := range m.store.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// String formats the entries like a Go map, in the backing store's order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	first := true
	for k, v := range m.store.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump writes a detailed, type-annotated rendering of the entries to w, for
// debugging. Nested values are expanded.
func (m *Map[K, V]) Dump(w io.Writer) {
	dumpConfig.Fdump(w, m.Entries())
}
