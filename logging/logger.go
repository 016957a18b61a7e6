// Package logging provides a small structured logging abstraction designed
// around uber-go/zap's sugared logger, with helpers for carrying a scoped
// logger on a context.
package logging

import "context"

type ctxkey struct{}

// With attaches a logger to the context.
//
// This can be used to create logging scopes like so:
//
//	for _, s := range subjects {
//	  ctx := logging.With(ctx, logger.Named(s.ID))
//	  check(ctx, s)
//	}
func With(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, ctxkey{}, logger)
}

// FromContext returns the scoped logger, or a nop logger if none was
// attached.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxkey{}).(Logger); ok {
		return l
	}
	return NewNopLogger()
}

// Logger provides an abstract logging interface designed around uber-go/zap's
// sugared logger, but is intended to provide interop with other libraries.
type Logger interface {
	Debug(args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Debugf(msg string, args ...interface{})
	Info(args ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Infof(msg string, args ...interface{})
	Warn(args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Warnf(msg string, args ...interface{})
	Error(args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Errorf(msg string, args ...interface{})

	// Named creates a child logger with the given name.
	Named(name string) Logger

	// With creates a child logger and attaches structured context to it.
	With(field string, value interface{}) Logger
}
