package nnmap

import "sync"

// Locked serialises every call on a [Map] behind one mutex, so concurrent
// misses on the same key evaluate it once and later callers see the stored
// value. The evaluator runs while the lock is held; a slow evaluator blocks
// every other caller of the same Locked.
//
//	cache := nnmap.NewLocked(nnmap.New(loadProfile))
//	go func() { p, err := cache.Get(userID) }()
type Locked[K, V any] struct {
	mu sync.Mutex
	m  *Map[K, V]
}

// NewLocked wraps m. m must not be used directly afterwards.
// It panics if m is nil.
func NewLocked[K, V any](m *Map[K, V]) *Locked[K, V] {
	if m == nil {
		panic("nnmap: nil map")
	}
	return &Locked[K, V]{m: m}
}

// Get is [Map.Get] under the lock.
func (l *Locked[K, V]) Get(key K) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Get(key)
}

// Put is [Map.Put] under the lock.
func (l *Locked[K, V]) Put(key K, value V) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Put(key, value)
}

// Remove is [Map.Remove] under the lock.
func (l *Locked[K, V]) Remove(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Remove(key)
}

// ContainsKey is [Map.ContainsKey] under the lock.
func (l *Locked[K, V]) ContainsKey(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.ContainsKey(key)
}

// Len is [Map.Len] under the lock.
func (l *Locked[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Len()
}

// Entries is [Map.Entries] under the lock.
func (l *Locked[K, V]) Entries() []Entry[K, V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Entries()
}

// Do runs fn with exclusive access to the wrapped map, for compound
// operations that must not interleave with other callers. fn must not retain
// the map after it returns.
func (l *Locked[K, V]) Do(fn func(m *Map[K, V])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.m)
}
