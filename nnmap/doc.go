// Package nnmap provides self-populating ("never nil") maps: a [Map.Get] for
// a missing key computes the value, caches it under that key and returns it.
//
// # Keyed and simple maps
//
// A keyed map is bound to an evaluator from key to value:
//
//	lengths := nnmap.New(mass.Func(func(s string) int { return len(s) }))
//	n, _ := lengths.Get("hello") // 5, now stored
//
// A simple map is bound to a zero-argument initializer and fills every missing
// slot with a fresh value of the same kind, whichever key missed:
//
//	groups := nnmap.NewSimple[string](func() ([]string, error) { return nil, nil })
//	byDept := nnmap.NewNested[string, string, int]()
//	byDept.MustGet("eng")["alice"] = 1
//
// # Backing stores
//
// The constructors pick the backing store, which only decides iteration
// order: New and NewSimple (hash, no order), NewLinked and NewSimpleLinked
// (insertion order), NewSorted, NewSimpleSorted and NewOrdered (key order).
// NewWithStore accepts any [store.Store].
//
// # Failures
//
// When the evaluator fails, Get returns its error unchanged and stores
// nothing. A later Get for the same key evaluates again.
//
// # Concurrency
//
// A Map runs check, evaluate and insert without synchronisation, so it must
// not be shared between goroutines. Wrap it in [Locked] when it must be.
package nnmap
