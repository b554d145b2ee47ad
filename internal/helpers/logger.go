// Package helpers holds small pieces shared by the packages of this module.
package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns a logger writing to handler, grouped under group when
// group is not empty. A nil handler is replaced by a text handler on stderr.
func SetupLogger(handler slog.Handler, group string) *slog.Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	if group != "" {
		handler = handler.WithGroup(group)
	}
	return slog.New(handler)
}
