package mass

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the transforms.
//
// Use [errors.Is] for comparisons:
//
//	_, err := mass.Transform(src, eval, mass.NewList[int](), mass.StrictPolicy())
//	if errors.Is(err, mass.ErrDuplicateKey) {
//	    // two elements evaluated to the same value
//	}
var (
	// ErrNilInput is returned when a source element is nil and the policy
	// does not skip nil elements.
	ErrNilInput = errors.New("mass: nil source element")

	// ErrNilValue is returned by [ForbidNil] for the first nil argument.
	ErrNilValue = errors.New("mass: missing value")

	// ErrNilResult is returned when an evaluator produced nil (or returned
	// [ErrSkip]) and the policy does not skip nil results.
	ErrNilResult = errors.New("mass: evaluator produced a nil result")

	// ErrDuplicateKey matches every [*DuplicateKeyError].
	ErrDuplicateKey = errors.New("mass: duplicate key")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("mass: chunk size must be greater than 0")

	// ErrInstantiation is returned when a container factory is missing or
	// produced a nil container.
	ErrInstantiation = errors.New("mass: cannot instantiate container")

	// ErrSkip may be returned by an evaluator to signal "no value". It is
	// handled exactly like a nil result.
	ErrSkip = errors.New("mass: skip element")
)

// DuplicateKeyError reports a produced key or value that collided with an
// existing entry while duplicates were not allowed.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("mass: duplicate key found: %v", e.Key)
}

// Is reports whether target is [ErrDuplicateKey].
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
