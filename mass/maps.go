package mass

import (
	"github.com/hasbyte1/go-mass-utils/store"
)

// GenerateMap builds a map from the key keyFn produces for each element to
// the element itself. A nil source is empty.
//
// Under [DefaultPolicy] nil elements and nil keys are skipped and a repeated
// key overrides the previous entry, so each key maps to the last element that
// produced it. With AllowDupes false a repeated key fails with
// [*DuplicateKeyError]; the map is returned anyway, holding every entry
// inserted before the colliding element.
//
// K must hold hashable keys at run time. With an interface key type such as
// any, a key function that returns a slice, map or func panics on the first
// lookup. Use [GenerateStore] with a [store.Sorted] comparator for such keys.
//
//	byInitial, _ := mass.GenerateMap([]string{"apple", "apricot", "banana"},
//	    mass.Func(func(s string) byte { return s[0] }), mass.DefaultPolicy())
//	// → map[a:apricot b:banana]
func GenerateMap[I any, K comparable](source []I, keyFn Evaluator[I, K], policy Policy) (map[K]I, error) {
	dst, err := GenerateStore(source, keyFn, store.NewHash[K, I](), policy)
	return map[K]I(dst), err
}

// GenerateStore is [GenerateMap] into any [store.Store]. The duplicate check
// is dst.Has. Pick a [store.Linked] or [store.Sorted] destination to control
// the iteration order of the result. A [store.Sorted] destination also accepts
// keys that are not comparable, since its comparator defines equality.
func GenerateStore[I, K any, S store.Store[K, I]](source []I, keyFn Evaluator[I, K], dst S, policy Policy) (S, error) {
	dupes := DupeCheckerFunc[K](dst.Has)
	for _, element := range source {
		result, err := Evaluate(element, keyFn, policy, dupes)
		if err != nil {
			return dst, err
		}
		if !result.Skip() {
			dst.Put(result.Value(), element)
		}
	}
	return dst, nil
}

// KeyBy is [GenerateMap] with [DefaultPolicy] and an infallible key function.
// It cannot fail.
func KeyBy[I any, K comparable](source []I, fn func(I) K) map[K]I {
	m, _ := GenerateMap(source, Func(fn), DefaultPolicy())
	return m
}

// GetOrInit returns the value stored under key. When key is absent it stores
// and returns initializer(seed) instead.
//
// If initializer fails its error is returned unchanged and key stays absent.
//
//	groups := store.NewHash[string, []string]()
//	list, _ := mass.GetOrInit(groups, "a", 4, func(n int) ([]string, error) {
//	    return make([]string, 0, n), nil
//	})
func GetOrInit[K, S, V any](s store.Store[K, V], key K, seed S, initializer Evaluator[S, V]) (V, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	v, err := initializer(seed)
	if err != nil {
		var zero V
		return zero, err
	}
	s.Put(key, v)
	return v, nil
}

// GetOrCall is [GetOrInit] with a zero-argument initializer.
func GetOrCall[K, V any](s store.Store[K, V], key K, initializer Lazy[V]) (V, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	v, err := initializer()
	if err != nil {
		var zero V
		return zero, err
	}
	s.Put(key, v)
	return v, nil
}
