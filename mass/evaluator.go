package mass

import (
	"fmt"
	"reflect"
)

// Evaluator maps an input to an output and may fail.
//
// There is a single evaluator type for both fallible and infallible logic.
// Infallible functions are adapted with [Func]; call sites that cannot handle
// a failure use [Evaluator.Must].
//
// An evaluator may return [ErrSkip] (or an error wrapping it) to signal that
// the element has no value. The policy engine treats that exactly like a nil
// result, which gives value-typed outputs such as string or int a way to
// express "null".
type Evaluator[I, O any] func(I) (O, error)

// Func adapts an infallible function into an [Evaluator].
func Func[I, O any](fn func(I) O) Evaluator[I, O] {
	return func(in I) (O, error) { return fn(in), nil }
}

// Must invokes e and panics if it fails.
func (e Evaluator[I, O]) Must(in I) O {
	out, err := e(in)
	if err != nil {
		panic(fmt.Sprintf("mass: evaluator failed: %v", err))
	}
	return out
}

// Void is the output type of evaluators that run only for their side effects.
type Void = struct{}

// Consumer adapts a side-effecting function into an [Evaluator] with no
// meaningful output.
func Consumer[I any](fn func(I)) Evaluator[I, Void] {
	return func(in I) (Void, error) {
		fn(in)
		return Void{}, nil
	}
}

// Lazy is a zero-argument initializer. It produces a value on demand, for
// example the default for a missing map slot.
type Lazy[V any] func() (V, error)

// FromLazy adapts l into an [Evaluator] that ignores its input, so the same
// initializer can be plugged in wherever an evaluator is expected.
func FromLazy[I, V any](l Lazy[V]) Evaluator[I, V] {
	return func(I) (V, error) { return l() }
}

// IsNil reports whether v is nil: an untyped nil, or a nil pointer, map,
// slice, channel, function or interface value. Values of any other kind are
// never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// ForbidNil returns an error wrapping [ErrNilValue] that names the position
// of the first nil value, or nil when every value is set.
//
//	if err := mass.ForbidNil(cfg, logger, store); err != nil {
//	    return err
//	}
func ForbidNil(values ...any) error {
	for i, v := range values {
		if IsNil(v) {
			return fmt.Errorf("%w: argument %d", ErrNilValue, i)
		}
	}
	return nil
}
