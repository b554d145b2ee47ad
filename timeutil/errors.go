package timeutil

import "errors"

var (
	// ErrInvalidTime is returned when a string is not a supported clock time.
	ErrInvalidTime = errors.New("timeutil: invalid time")

	// ErrEmptySpan is returned when a span starts and ends at the same minute.
	ErrEmptySpan = errors.New("timeutil: span starts and ends at the same time")
)
