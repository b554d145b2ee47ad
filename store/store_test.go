package store_test

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-mass-utils/store"
)

func flavours() map[string]func() store.Store[string, int] {
	return map[string]func() store.Store[string, int]{
		"hash":   func() store.Store[string, int] { return store.NewHash[string, int]() },
		"linked": func() store.Store[string, int] { return store.NewLinked[string, int]() },
		"sorted": func() store.Store[string, int] { return store.NewSorted[string, int](strings.Compare) },
	}
}

func TestStoreContract(t *testing.T) {
	t.Parallel()
	for name, newStore := range flavours() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := newStore()
			assert.Equal(t, 0, s.Len())

			_, ok := s.Get("a")
			assert.False(t, ok)

			_, replaced := s.Put("a", 1)
			assert.False(t, replaced)
			prev, replaced := s.Put("a", 2)
			assert.True(t, replaced)
			assert.Equal(t, 1, prev)

			v, ok := s.Get("a")
			require.True(t, ok)
			assert.Equal(t, 2, v)
			assert.True(t, s.Has("a"))
			assert.Equal(t, 1, s.Len())

			removed, ok := s.Delete("a")
			assert.True(t, ok)
			assert.Equal(t, 2, removed)
			assert.False(t, s.Has("a"))

			_, ok = s.Delete("a")
			assert.False(t, ok)

			s.Put("x", 1)
			s.Put("y", 2)
			s.Clear()
			assert.Equal(t, 0, s.Len())
			assert.Empty(t, slices.Collect(s.Keys()))
		})
	}
}

func TestStoreIterationSameContent(t *testing.T) {
	t.Parallel()
	for name, newStore := range flavours() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := newStore()
			s.Put("c", 3)
			s.Put("a", 1)
			s.Put("b", 2)
			assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, maps.Collect(s.All()))
			assert.ElementsMatch(t, []int{1, 2, 3}, slices.Collect(s.Values()))
		})
	}
}

func TestLinkedInsertionOrder(t *testing.T) {
	t.Parallel()
	s := store.NewLinked[string, int]()
	s.Put("c", 3)
	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("c", 30)
	assert.Equal(t, []string{"c", "a", "b"}, slices.Collect(s.Keys()))
	assert.Equal(t, []int{30, 1, 2}, slices.Collect(s.Values()))

	s.Delete("c")
	s.Put("c", 4)
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(s.Keys()))
}

func TestLinkedDeleteDuringIteration(t *testing.T) {
	t.Parallel()
	s := store.NewLinked[int, int]()
	for i := range 5 {
		s.Put(i, i)
	}
	var seen []int
	for k := range s.Keys() {
		seen = append(seen, k)
		s.Delete(k)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Equal(t, 0, s.Len())
}

func TestLinkedDeleteAheadDuringIteration(t *testing.T) {
	t.Parallel()
	s := store.NewLinked[int, int]()
	for i := range 5 {
		s.Put(i, i*10)
	}
	var seen []int
	for k := range s.Keys() {
		seen = append(seen, k)
		if k == 0 {
			s.Delete(1)
			s.Delete(3)
		}
	}
	assert.Equal(t, []int{0, 2, 4}, seen)
	assert.Equal(t, 3, s.Len())
}

func TestLinkedClearDuringIteration(t *testing.T) {
	t.Parallel()
	s := store.NewLinked[int, int]()
	for i := range 5 {
		s.Put(i, i)
	}
	var seen []int
	for k := range s.Keys() {
		seen = append(seen, k)
		s.Clear()
		s.Put(k+100, 0)
	}
	assert.Equal(t, []int{0}, seen)
	assert.Equal(t, []int{100}, slices.Collect(s.Keys()))
}

func TestLinkedIterationSeesUpdatedValues(t *testing.T) {
	t.Parallel()
	s := store.NewLinked[string, int]()
	s.Put("a", 1)
	s.Put("b", 2)
	var got []int
	for k, v := range s.All() {
		got = append(got, v)
		if k == "a" {
			s.Put("b", 20)
		}
	}
	assert.Equal(t, []int{1, 20}, got)
}

func TestSortedOrderAndComparatorEquality(t *testing.T) {
	t.Parallel()
	s := store.NewSorted[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	s.Put("banana", 2)
	s.Put("Apple", 1)
	s.Put("cherry", 3)
	prev, replaced := s.Put("APPLE", 10)

	assert.True(t, replaced)
	assert.Equal(t, 1, prev)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, slices.Collect(s.Keys()))
	assert.True(t, s.Has("apple"))
}

func TestSortedEarlyBreak(t *testing.T) {
	t.Parallel()
	s := store.NewSorted[int, string](func(a, b int) int { return a - b })
	for i := 10; i > 0; i-- {
		s.Put(i, "v")
	}
	var got []int
	for k := range s.Keys() {
		if k > 3 {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSortedNilComparatorPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { store.NewSorted[string, int](nil) })
}

func TestHashSharesMap(t *testing.T) {
	t.Parallel()
	m := map[string]int{"a": 1}
	h := store.Hash[string, int](m)
	h.Put("b", 2)
	assert.Equal(t, 2, m["b"])
}
