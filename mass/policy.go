package mass

import "errors"

// Policy governs null and duplicate handling. The same policy means the same
// thing for collection transforms and map transforms.
type Policy struct {
	// AllowDupes lets a value (or key) that is already present in the
	// destination through. What "through" means is up to the destination:
	// a list appends it again, a map overrides the previous entry.
	// When false, a collision fails with [*DuplicateKeyError].
	AllowDupes bool

	// SkipNullObjects skips nil source elements instead of failing with
	// [ErrNilInput]. The evaluator is never called with a nil element.
	SkipNullObjects bool

	// SkipNullValues skips elements whose evaluated result is nil (or whose
	// evaluator returned [ErrSkip]) instead of failing with [ErrNilResult].
	SkipNullValues bool
}

// DefaultPolicy skips nil elements and nil results and allows duplicates.
// Transforms run under this policy cannot fail with a duplicate error.
func DefaultPolicy() Policy {
	return Policy{AllowDupes: true, SkipNullObjects: true, SkipNullValues: true}
}

// StrictPolicy is [DefaultPolicy] with duplicates rejected.
func StrictPolicy() Policy {
	return Policy{AllowDupes: false, SkipNullObjects: true, SkipNullValues: true}
}

// DupeChecker answers whether a destination already holds a value or key.
type DupeChecker[V any] interface {
	CheckIfDupe(candidate V) bool
}

// DupeCheckerFunc adapts a membership test, such as a container's Contains
// or a store's Has, into a [DupeChecker].
type DupeCheckerFunc[V any] func(V) bool

// CheckIfDupe calls f(candidate).
func (f DupeCheckerFunc[V]) CheckIfDupe(candidate V) bool { return f(candidate) }

// EvaluationResult is either a produced value or a skip marker.
type EvaluationResult[V any] struct {
	value V
	skip  bool
}

// Skip reports whether the element should be left out of the destination.
func (r EvaluationResult[V]) Skip() bool { return r.skip }

// Value returns the produced value. It is the zero value for a skip.
func (r EvaluationResult[V]) Value() V { return r.value }

func skipped[V any]() EvaluationResult[V] { return EvaluationResult[V]{skip: true} }

func produced[V any](v V) EvaluationResult[V] { return EvaluationResult[V]{value: v} }

// Evaluate decides whether element is skipped and, if not, evaluates it.
//
//   - A nil element is skipped under SkipNullObjects and fails with
//     [ErrNilInput] otherwise.
//   - An evaluator failure is returned unchanged, unless it matches
//     [ErrSkip].
//   - A nil result (or [ErrSkip]) is skipped under SkipNullValues and fails
//     with [ErrNilResult] otherwise.
//   - A result that dupes reports as present is produced under AllowDupes
//     and fails with [*DuplicateKeyError] otherwise.
//
// A nil dupes never reports a duplicate.
func Evaluate[I, V any](element I, eval Evaluator[I, V], policy Policy, dupes DupeChecker[V]) (EvaluationResult[V], error) {
	if IsNil(element) {
		if policy.SkipNullObjects {
			return skipped[V](), nil
		}
		return skipped[V](), ErrNilInput
	}

	result, err := eval(element)
	nilResult := false
	switch {
	case errors.Is(err, ErrSkip):
		nilResult = true
	case err != nil:
		return skipped[V](), err
	default:
		nilResult = IsNil(result)
	}
	if nilResult {
		if policy.SkipNullValues {
			return skipped[V](), nil
		}
		return skipped[V](), ErrNilResult
	}

	if dupes != nil && dupes.CheckIfDupe(result) && !policy.AllowDupes {
		return skipped[V](), &DuplicateKeyError{Key: result}
	}
	return produced(result), nil
}
