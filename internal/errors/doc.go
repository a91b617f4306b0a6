// Package errors carries the error taxonomy of the tool and thin helpers
// around github.com/go-errors/errors for attaching stack traces.
//
// Stack traces are kept for debug logging only; user-facing output prints
// the message alone.
package errors
