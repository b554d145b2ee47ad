package closer_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-mass-utils/closer"
	"github.com/hasbyte1/go-mass-utils/mass"
)

type resource struct {
	closed int
	err    error
}

func (r *resource) Close() error {
	r.closed++
	return r.err
}

func newHandler() (*bytes.Buffer, slog.Handler) {
	var buf bytes.Buffer
	return &buf, slog.NewTextHandler(&buf, nil)
}

func TestQuietlyClosesAndLogsFailure(t *testing.T) {
	t.Parallel()
	buf, h := newHandler()

	ok := &resource{}
	closer.Quietly(ok, h)
	assert.Equal(t, 1, ok.closed)
	assert.Empty(t, buf.String())

	bad := &resource{err: errors.New("disk gone")}
	closer.Quietly(bad, h)
	assert.Equal(t, 1, bad.closed)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="close failed"`)
	assert.Contains(t, out, `closer.error="disk gone"`)
	assert.Contains(t, out, "closer.type=*closer_test.resource")
}

func TestQuietlyIgnoresNil(t *testing.T) {
	t.Parallel()
	buf, h := newHandler()

	var typed *resource
	assert.NotPanics(t, func() {
		closer.Quietly(nil, h)
		closer.Quietly(typed, h)
	})
	assert.Empty(t, buf.String())
}

func TestAllContinuesAfterFailure(t *testing.T) {
	t.Parallel()
	buf, h := newHandler()

	first := &resource{err: errors.New("first")}
	second := &resource{}
	var missing *resource
	closer.All(h, first, missing, second)

	assert.Equal(t, 1, first.closed)
	assert.Equal(t, 1, second.closed)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("close failed")))
}

func TestEvaluatorClosesCollection(t *testing.T) {
	t.Parallel()
	buf, h := newHandler()

	a, b := &resource{}, &resource{err: errors.New("b")}
	resources := []io.Closer{a, nil, b}

	got, err := mass.Transform(resources, closer.Evaluator(h), mass.NewList[mass.Void](), mass.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
	assert.Contains(t, buf.String(), `closer.error=b`)
}
