package closer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hasbyte1/go-mass-utils/internal/helpers"
	"github.com/hasbyte1/go-mass-utils/mass"
)

const group = "closer"

// Quietly closes c and logs a failure at warn level. Nil closers, including
// nil pointers stored in the interface, are ignored.
func Quietly(c io.Closer, handler slog.Handler) {
	quietly(c, helpers.SetupLogger(handler, group))
}

func quietly(c io.Closer, logger *slog.Logger) {
	if mass.IsNil(c) {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("close failed", "type", fmt.Sprintf("%T", c), "error", err)
	}
}

// All closes every closer in order with [Quietly]. A failure does not stop
// the remaining closers.
func All(handler slog.Handler, cs ...io.Closer) {
	logger := helpers.SetupLogger(handler, group)
	for _, c := range cs {
		quietly(c, logger)
	}
}

// Evaluator returns [Quietly] as an evaluator, for closing whole collections
// through the mass package:
//
//	var resources []io.Closer
//	_, err := mass.Transform(resources, closer.Evaluator(h), mass.NewList[mass.Void](), mass.DefaultPolicy())
//
// It never fails and always yields the zero [mass.Void].
func Evaluator(handler slog.Handler) mass.Evaluator[io.Closer, mass.Void] {
	logger := helpers.SetupLogger(handler, group)
	return func(c io.Closer) (mass.Void, error) {
		quietly(c, logger)
		return mass.Void{}, nil
	}
}
