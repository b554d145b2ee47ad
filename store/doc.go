// Package store provides the key/value backing stores shared by the map
// transforms in package mass and the self-populating maps in package nnmap.
//
// # Flavours
//
// Three implementations of [Store] ship with this package. They differ only in
// iteration order, never in lookup semantics:
//
//   - [Hash]: a plain Go map; iteration order is unspecified.
//   - [Linked]: iterates in insertion order. Re-putting an existing key
//     keeps its original position.
//   - [Sorted]: iterates in the order defined by a comparator. The
//     comparator also defines key equality, so K does not need to be
//     comparable.
//
// A sorted store of strings:
//
//	s := store.NewSorted[string, int](strings.Compare)
//	s.Put("b", 2)
//	s.Put("a", 1)
//	for k, v := range s.All() {
//	    fmt.Println(k, v) // a 1, then b 2
//	}
//
// # Concurrency
//
// Stores are not safe for concurrent use. Callers that share a store across
// goroutines must serialise access themselves.
package store
