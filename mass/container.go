package mass

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Container is a destination for collection transforms: anything that
// supports a membership test and an append.
//
// Contains doubles as the duplicate check of the policy engine, so the
// container alone decides what "duplicate" means.
type Container[V any] interface {
	// Contains reports whether v is already held.
	Contains(v V) bool

	// Add appends v. Set-like containers may ignore a value they already hold.
	Add(v V)

	// Len returns the number of held values.
	Len() int
}

// ─────────────────────────────────────────────────────────────────────────────
// List
// ─────────────────────────────────────────────────────────────────────────────

// List is an order-preserving [Container] that keeps duplicates.
type List[V comparable] struct {
	items  []V
	counts map[V]int
}

var _ Container[int] = (*List[int])(nil)

// NewList returns a List holding items, in order.
func NewList[V comparable](items ...V) *List[V] {
	l := &List[V]{counts: make(map[V]int, len(items))}
	for _, v := range items {
		l.Add(v)
	}
	return l
}

// Contains reports whether v occurs at least once.
func (l *List[V]) Contains(v V) bool { return l.counts[v] > 0 }

// Add appends v.
func (l *List[V]) Add(v V) {
	if l.counts == nil {
		l.counts = make(map[V]int)
	}
	l.items = append(l.items, v)
	l.counts[v]++
}

// Len returns the number of items, duplicates included.
func (l *List[V]) Len() int { return len(l.items) }

// All returns a copy of the items in insertion order.
func (l *List[V]) All() []V {
	out := make([]V, len(l.items))
	copy(out, l.items)
	return out
}

// String returns the items formatted like a slice.
func (l *List[V]) String() string { return fmt.Sprintf("%v", l.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Set
// ─────────────────────────────────────────────────────────────────────────────

// Set is a [Container] that holds each value once, in first-insertion order.
// Adding a value that is already held is a no-op.
type Set[V comparable] struct {
	items []V
	seen  map[V]struct{}
}

var _ Container[int] = (*Set[int])(nil)

// NewSet returns a Set holding the distinct values of items.
func NewSet[V comparable](items ...V) *Set[V] {
	s := &Set[V]{seen: make(map[V]struct{}, len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Contains reports whether v is held.
func (s *Set[V]) Contains(v V) bool {
	_, ok := s.seen[v]
	return ok
}

// Add inserts v unless it is already held.
func (s *Set[V]) Add(v V) {
	if s.seen == nil {
		s.seen = make(map[V]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// Len returns the number of distinct values.
func (s *Set[V]) Len() int { return len(s.items) }

// All returns a copy of the values in first-insertion order.
func (s *Set[V]) All() []V {
	out := make([]V, len(s.items))
	copy(out, s.items)
	return out
}

// String returns the values formatted like a slice.
func (s *Set[V]) String() string { return fmt.Sprintf("%v", s.items) }

// ─────────────────────────────────────────────────────────────────────────────
// DigestSet
// ─────────────────────────────────────────────────────────────────────────────

// DigestSet is a set [Container] for values that are not comparable, such as
// slices, maps or structs holding them. Membership is decided by the
// BLAKE2b-256 digest of an encoding of each value, so two values are the same
// when their encodings are byte-for-byte equal.
//
// The default encoding is the Go-syntax representation (%#v). Map keys are
// printed sorted, so equal maps encode equally; pointers encode by address.
type DigestSet[V any] struct {
	encode func(V) []byte
	items  []V
	seen   map[[blake2b.Size256]byte]struct{}
}

var _ Container[[]int] = (*DigestSet[[]int])(nil)

// NewDigestSet returns an empty DigestSet using the %#v encoding.
func NewDigestSet[V any]() *DigestSet[V] {
	return NewDigestSetWith(func(v V) []byte { return fmt.Appendf(nil, "%#v", v) })
}

// NewDigestSetWith returns an empty DigestSet using encode to derive the
// bytes that are digested. It panics if encode is nil.
func NewDigestSetWith[V any](encode func(V) []byte) *DigestSet[V] {
	if encode == nil {
		panic("mass: nil digest encoder")
	}
	return &DigestSet[V]{
		encode: encode,
		seen:   make(map[[blake2b.Size256]byte]struct{}),
	}
}

func (d *DigestSet[V]) digest(v V) [blake2b.Size256]byte {
	return blake2b.Sum256(d.encode(v))
}

// Contains reports whether a value with the same encoding is held.
func (d *DigestSet[V]) Contains(v V) bool {
	_, ok := d.seen[d.digest(v)]
	return ok
}

// Add inserts v unless a value with the same encoding is already held.
func (d *DigestSet[V]) Add(v V) {
	sum := d.digest(v)
	if _, ok := d.seen[sum]; ok {
		return
	}
	d.seen[sum] = struct{}{}
	d.items = append(d.items, v)
}

// Len returns the number of distinct values.
func (d *DigestSet[V]) Len() int { return len(d.items) }

// All returns a copy of the values in first-insertion order.
func (d *DigestSet[V]) All() []V {
	out := make([]V, len(d.items))
	copy(out, d.items)
	return out
}
