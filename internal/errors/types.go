package errors

import "fmt"

// ConfigError reports missing or malformed command-line input. It is
// answered with usage help rather than a failure.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string { return "invalid arguments: " + e.Msg }

// ResourceError reports a path that is missing, unreadable or of the wrong
// kind. It aborts the whole run.
type ResourceError struct {
	Path string
	Err  error
}

func (e ResourceError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e ResourceError) Unwrap() error { return e.Err }

// AlgorithmUnavailableError reports a digest algorithm this build does not carry.
type AlgorithmUnavailableError struct {
	Name string
}

func (e AlgorithmUnavailableError) Error() string {
	return fmt.Sprintf("digest algorithm %q is not available", e.Name)
}

// MalformedDigestError reports a hash-file line that is not a hex digest of
// the expected width.
type MalformedDigestError struct {
	Line int
	Text string
	Err  error
}

func (e MalformedDigestError) Error() string {
	return fmt.Sprintf("line %d: malformed digest %q: %v", e.Line, e.Text, e.Err)
}

func (e MalformedDigestError) Unwrap() error { return e.Err }
