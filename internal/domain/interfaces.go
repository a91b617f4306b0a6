package domain

// LineReader reads a newline-delimited text file in file order.
type LineReader interface {
	ReadLines(path string) ([]string, error)
}

// Appender appends raw bytes to a file, creating it if absent.
type Appender interface {
	AppendBytes(path string, b []byte) error
}

// CandidateSource yields candidate plaintexts one at a time.
//
// HasNext must be called before every Next. Once HasNext returns false it
// stays false; Err then reports whether generation stopped on an error.
type CandidateSource interface {
	HasNext() bool
	Next() string
	Err() error
}

// ResultSink receives recovered plaintexts as soon as they are found.
type ResultSink interface {
	Emit(d Digest, plaintext string) error
}
