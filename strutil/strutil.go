// Package strutil collects string helpers used alongside the mass package.
package strutil

import (
	"slices"
	"strings"

	"github.com/hasbyte1/go-mass-utils/mass"
)

// Empty reports whether s is nil or points to an empty string.
func Empty(s *string) bool { return s == nil || *s == "" }

// Deref returns *s, or "" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Pad adds prefix and suffix to s unless s already starts or ends with them.
// Empty affixes are ignored.
//
//	strutil.Pad("users", "/", "/")  // "/users/"
//	strutil.Pad("/users", "/", "/") // "/users/"
func Pad(s, prefix, suffix string) string {
	if prefix != "" && !strings.HasPrefix(s, prefix) {
		s = prefix + s
	}
	if suffix != "" && !strings.HasSuffix(s, suffix) {
		s += suffix
	}
	return s
}

// SplitAndTrim splits s around every occurrence of sep and trims surrounding
// white space from each piece. Empty pieces are kept.
func SplitAndTrim(s, sep string) []string {
	pieces := strings.Split(s, sep)
	for i, p := range pieces {
		pieces[i] = strings.TrimSpace(p)
	}
	return pieces
}

// BreakAndTrimLines is [SplitAndTrim] that drops pieces left empty after
// trimming, unless keepEmpty is set. The result is never nil.
func BreakAndTrimLines(s, sep string, keepEmpty bool) []string {
	trim := mass.Evaluator[string, string](func(piece string) (string, error) {
		piece = strings.TrimSpace(piece)
		if piece == "" && !keepEmpty {
			return "", mass.ErrSkip
		}
		return piece, nil
	})
	// trim never fails and DefaultPolicy allows duplicates.
	lines, _ := mass.TransformSeq(strings.SplitSeq(s, sep), trim, mass.NewList[string](), mass.DefaultPolicy())
	return lines.All()
}

// Repeat joins count copies of s with sep. It returns "" when count <= 0.
//
//	strutil.Repeat("?", 3, ", ") // "?, ?, ?"
func Repeat(s string, count int, sep string) string {
	if count <= 0 {
		return ""
	}
	return strings.Join(slices.Repeat([]string{s}, count), sep)
}
