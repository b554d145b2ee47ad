package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-mass-utils/strutil"
)

func TestEmptyAndDeref(t *testing.T) {
	t.Parallel()
	blank, word := "", "go"

	assert.True(t, strutil.Empty(nil))
	assert.True(t, strutil.Empty(&blank))
	assert.False(t, strutil.Empty(&word))

	assert.Equal(t, "", strutil.Deref(nil))
	assert.Equal(t, "go", strutil.Deref(&word))
}

func TestPad(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name, in, prefix, suffix, want string
	}{
		{"both missing", "users", "/", "/", "/users/"},
		{"prefix present", "/users", "/", "/", "/users/"},
		{"both present", "/users/", "/", "/", "/users/"},
		{"empty affixes", "users", "", "", "users"},
		{"empty input", "", "[", "]", "[]"},
		{"multi-char", "name", "${", "}", "${name}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, strutil.Pad(tt.in, tt.prefix, tt.suffix))
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b", "", "c"}, strutil.SplitAndTrim(" a , b,, c ", ","))
	assert.Equal(t, []string{""}, strutil.SplitAndTrim("", ","))
}

func TestBreakAndTrimLines(t *testing.T) {
	t.Parallel()
	text := "  first\n\n second  \n   \nthird"

	assert.Equal(t, []string{"first", "second", "third"}, strutil.BreakAndTrimLines(text, "\n", false))
	assert.Equal(t, []string{"first", "", "second", "", "third"}, strutil.BreakAndTrimLines(text, "\n", true))
	assert.Equal(t, []string{"x", "x"}, strutil.BreakAndTrimLines("x;x", ";", false))

	got := strutil.BreakAndTrimLines("", "\n", false)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepeat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "?, ?, ?", strutil.Repeat("?", 3, ", "))
	assert.Equal(t, "ab", strutil.Repeat("ab", 1, "-"))
	assert.Equal(t, "", strutil.Repeat("?", 0, ","))
	assert.Equal(t, "", strutil.Repeat("?", -2, ","))
}
