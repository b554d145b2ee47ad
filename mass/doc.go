// Package mass converts one collection into another collection, or into a
// key-indexed map, by applying an [Evaluator] to every element under a
// [Policy] for null and duplicate handling.
//
// # Evaluators
//
// An [Evaluator] is a plain function that may fail:
//
//	length := mass.Func(func(s string) int { return len(s) })
//	parse  := mass.Evaluator[string, int](strconv.Atoi)
//
// # Policy
//
// Every transform runs each element through [Evaluate], which applies the
// three flags of a [Policy] identically for collections and maps:
//
//   - SkipNullObjects: skip nil elements instead of failing with [ErrNilInput].
//   - SkipNullValues: skip nil results instead of failing with [ErrNilResult].
//   - AllowDupes: let a result that is already in the destination through
//     instead of failing with [*DuplicateKeyError].
//
// [DefaultPolicy] enables all three. The short forms [Collect], [KeyBy] and
// [JoinStrings] always run under it and therefore never report a duplicate.
//
// "Nil" covers nil pointers, maps, slices, channels, functions and interfaces
// (see [IsNil]). Evaluators producing value types signal "no value" by
// returning [ErrSkip].
//
// # Collections
//
// [Transform] appends produced values to a caller-owned [Container]. The
// container's Contains is the duplicate check, so a [List] collects
// duplicates again, a [Set] drops them and a [DigestSet] does the same for
// values that are not comparable:
//
//	lengths, err := mass.Transform([]string{"a", "bb", "a"}, length,
//	    mass.NewList[int](), mass.DefaultPolicy()) // → [1 2 1]
//
// # Maps
//
// [GenerateMap] maps the key produced for each element to the element itself.
// Under the default policy a repeated key overrides the previous entry, while
// collection transforms simply append the duplicate again. With duplicates
// rejected, the map is returned together with the error and still holds
// everything inserted before the collision.
//
// [GetOrInit] is the get-or-compute step on which the self-populating maps of
// package nnmap are built.
//
// # Concurrency
//
// Transforms run synchronously on the calling goroutine. The destination must
// not be used by other goroutines while a transform writes to it.
package mass
