package store

import (
	"container/list"
	"iter"
)

type linkedEntry[K, V any] struct {
	key   K
	value V
}

// Linked is a [Store] that iterates in insertion order.
//
// Putting a key that is already present replaces its value but keeps its
// position. Deleting and re-putting a key moves it to the end.
//
// Deleting or clearing entries during iteration is allowed.
type Linked[K comparable, V any] struct {
	index map[K]*list.Element
	order *list.List
}

var _ Store[string, int] = (*Linked[string, int])(nil)

// NewLinked returns an empty Linked store.
func NewLinked[K comparable, V any]() *Linked[K, V] {
	return &Linked[K, V]{
		index: make(map[K]*list.Element),
		order: list.New(),
	}
}

func entryOf[K comparable, V any](e *list.Element) *linkedEntry[K, V] {
	return e.Value.(*linkedEntry[K, V])
}

// Get returns the value stored under key.
func (l *Linked[K, V]) Get(key K) (V, bool) {
	e, ok := l.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return entryOf[K, V](e).value, true
}

// Put stores value under key and returns the replaced value, if any.
func (l *Linked[K, V]) Put(key K, value V) (V, bool) {
	if e, ok := l.index[key]; ok {
		entry := entryOf[K, V](e)
		prev := entry.value
		entry.value = value
		return prev, true
	}
	l.index[key] = l.order.PushBack(&linkedEntry[K, V]{key: key, value: value})
	var zero V
	return zero, false
}

// Delete removes key and returns the removed value, if any.
func (l *Linked[K, V]) Delete(key K) (V, bool) {
	e, ok := l.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(l.index, key)
	return l.order.Remove(e).(*linkedEntry[K, V]).value, true
}

// Has reports whether key is present.
func (l *Linked[K, V]) Has(key K) bool {
	_, ok := l.index[key]
	return ok
}

// Len returns the number of entries.
func (l *Linked[K, V]) Len() int { return len(l.index) }

// Clear removes every entry.
func (l *Linked[K, V]) Clear() {
	clear(l.index)
	l.order.Init()
}

// All iterates over the entries in insertion order. The order is fixed when
// iteration starts; entries deleted meanwhile are not visited and entries
// added meanwhile are not visited either.
func (l *Linked[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		elems := make([]*list.Element, 0, l.order.Len())
		for e := l.order.Front(); e != nil; e = e.Next() {
			elems = append(elems, e)
		}
		for _, e := range elems {
			entry := entryOf[K, V](e)
			if l.index[entry.key] != e {
				continue
			}
			if !yield(entry.key, entry.value) {
				return
			}
		}
	}
}

// Keys iterates over the keys in insertion order.
func (l *Linked[K, V]) Keys() iter.Seq[K] { return keysOf(l.All()) }

// Values iterates over the values in insertion order.
func (l *Linked[K, V]) Values() iter.Seq[V] { return valuesOf(l.All()) }
