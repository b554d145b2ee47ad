package mass

import (
	"iter"
	"slices"
	"strings"
)

// Transform evaluates every element of source under policy and adds each
// produced value to dst, in source order. A nil source is empty.
//
// The duplicate check is dst.Contains. On failure dst keeps every value
// produced before the failing element and the error is returned alongside it:
//
//	dst, err := mass.Transform(words, mass.Func(strings.ToUpper),
//	    mass.NewList[string](), mass.StrictPolicy())
//	var dup *mass.DuplicateKeyError
//	if errors.As(err, &dup) {
//	    // dst holds the values before dup.Key
//	}
func Transform[I, V any, C Container[V]](source []I, eval Evaluator[I, V], dst C, policy Policy) (C, error) {
	return TransformSeq(slices.Values(source), eval, dst, policy)
}

// TransformSeq is [Transform] over any iterable source.
func TransformSeq[I, V any, C Container[V]](source iter.Seq[I], eval Evaluator[I, V], dst C, policy Policy) (C, error) {
	if source == nil {
		return dst, nil
	}
	dupes := DupeCheckerFunc[V](dst.Contains)
	for element := range source {
		result, err := Evaluate(element, eval, policy, dupes)
		if err != nil {
			return dst, err
		}
		if !result.Skip() {
			dst.Add(result.Value())
		}
	}
	return dst, nil
}

// Collect is [Transform] with [DefaultPolicy] and an infallible function:
// nil elements and nil results are skipped and duplicates are added again.
// It cannot fail.
//
//	lengths := mass.Collect([]string{"a", "bb"}, func(s string) int { return len(s) },
//	    mass.NewList[int]())
func Collect[I, V any, C Container[V]](source []I, fn func(I) V, dst C) C {
	dst, _ = Transform(source, Func(fn), dst, DefaultPolicy())
	return dst
}

// Chunk splits source into consecutive containers of at most maxChunkSize
// values each, built by newContainer. Only the last chunk may be smaller and
// no empty chunk is ever returned.
//
// Returns [ErrInvalidChunkSize] when maxChunkSize <= 0 and [ErrInstantiation]
// when newContainer is nil or returns a nil container.
//
//	chunks, _ := mass.Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 3,
//	    func() *mass.List[int] { return mass.NewList[int]() })
//	// → [1 2 3] [4 5 6] [7]
func Chunk[V any, C Container[V]](source []V, maxChunkSize int, newContainer func() C) ([]C, error) {
	if maxChunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	step, err := instantiate(newContainer)
	if err != nil {
		return nil, err
	}
	n := len(source) / maxChunkSize
	if len(source)%maxChunkSize != 0 {
		n++
	}
	chunks := make([]C, 0, n)
	for _, v := range source {
		if step.Len() == maxChunkSize {
			chunks = append(chunks, step)
			if step, err = instantiate(newContainer); err != nil {
				return nil, err
			}
		}
		step.Add(v)
	}
	if step.Len() > 0 {
		chunks = append(chunks, step)
	}
	return chunks, nil
}

func instantiate[C any](newContainer func() C) (C, error) {
	var zero C
	if newContainer == nil {
		return zero, ErrInstantiation
	}
	c := newContainer()
	if IsNil(c) {
		return zero, ErrInstantiation
	}
	return c, nil
}

// JoinStrings converts every element with eval under [DefaultPolicy] and
// joins the surviving strings with sep. Elements for which eval returns
// [ErrSkip] are left out. When nothing survives it returns emptyMessage[0],
// or "" if no message is given.
//
//	s, _ := mass.JoinStrings(users, userName, ", ", "(nobody)")
func JoinStrings[I any](source []I, eval Evaluator[I, string], sep string, emptyMessage ...string) (string, error) {
	parts, err := Transform(source, eval, &joinBuffer{}, DefaultPolicy())
	if err != nil {
		return "", err
	}
	if len(parts.items) == 0 {
		if len(emptyMessage) > 0 {
			return emptyMessage[0], nil
		}
		return "", nil
	}
	return strings.Join(parts.items, sep), nil
}

// joinBuffer collects strings for JoinStrings. Duplicates are always allowed
// there, so it never needs a membership test.
type joinBuffer struct {
	items []string
}

func (b *joinBuffer) Contains(string) bool { return false }
func (b *joinBuffer) Add(s string)         { b.items = append(b.items, s) }
func (b *joinBuffer) Len() int             { return len(b.items) }

// AppendIfPresent adds element to dst unless it is nil and reports whether it
// was added.
func AppendIfPresent[V any](element V, dst Container[V]) bool {
	if IsNil(element) {
		return false
	}
	dst.Add(element)
	return true
}
