package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given error already
// has a stack trace, it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// WithStackTraceAndPrefix wraps the given error with a stack trace and prepends the given message. If the given
// error is nil, return nil.
func WithStackTraceAndPrefix(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

// IsError returns true if actual is, or wraps, expected.
func IsError(actual error, expected error) bool {
	return goerrors.Is(actual, expected)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the original error if err is a wrapper carrying a stack trace. In all other cases the error is
// returned unchanged.
func Unwrap(err error) error {
	if err == nil {
		return nil
	}

	if goError, ok := err.(*goerrors.Error); ok {
		return goError.Err
	}

	return err
}

// PrintErrorWithStackTrace converts the given error to a string, including the stack trace if available.
func PrintErrorWithStackTrace(err error) string {
	if err == nil {
		return ""
	}

	var goError *goerrors.Error
	if stderrors.As(err, &goError) {
		return goError.ErrorStack()
	}

	return err.Error()
}
