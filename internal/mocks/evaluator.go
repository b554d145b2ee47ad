// Package mocks provides testify mocks for the evaluator and initializer
// types, used by tests to assert how often user logic is invoked.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/hasbyte1/go-mass-utils/mass"
)

// Evaluator is a mock implementation of an evaluator from I to O.
type Evaluator[I, O any] struct {
	mock.Mock
}

// Evaluate is the mocked evaluation.
func (m *Evaluator[I, O]) Evaluate(in I) (O, error) {
	args := m.Called(in)
	var out O
	if v := args.Get(0); v != nil {
		out = v.(O)
	}
	return out, args.Error(1)
}

// Func returns the mock as a [mass.Evaluator].
func (m *Evaluator[I, O]) Func() mass.Evaluator[I, O] {
	return m.Evaluate
}

// Lazy is a mock implementation of a zero-argument initializer.
type Lazy[V any] struct {
	mock.Mock
}

// Call is the mocked initialization.
func (m *Lazy[V]) Call() (V, error) {
	args := m.Called()
	var out V
	if v := args.Get(0); v != nil {
		out = v.(V)
	}
	return out, args.Error(1)
}

// Func returns the mock as a [mass.Lazy].
func (m *Lazy[V]) Func() mass.Lazy[V] {
	return m.Call
}
