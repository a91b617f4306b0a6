package store

import (
	"strings"

	"hashrecover/internal/domain"
)

// ResultFile is the results sink: one "<HEX> <plaintext>\r\n" line per
// recovered occurrence, appended as soon as it is found.
type ResultFile struct {
	path string
	out  domain.Appender
}

// NewResultFile returns a sink appending to path through out.
func NewResultFile(path string, out domain.Appender) *ResultFile {
	return &ResultFile{path: path, out: out}
}

// Path returns the file the sink appends to.
func (r *ResultFile) Path() string { return r.path }

// Emit appends one result line.
func (r *ResultFile) Emit(d domain.Digest, plaintext string) error {
	return r.out.AppendBytes(r.path, []byte(FormatResult(d, plaintext)))
}

// FormatResult renders a result line with upper-case hex and a CRLF ending.
func FormatResult(d domain.Digest, plaintext string) string {
	var b strings.Builder
	b.Grow(2*domain.DigestSize + len(plaintext) + 3)
	b.WriteString(d.Hex())
	b.WriteByte(' ')
	b.WriteString(plaintext)
	b.WriteString("\r\n")
	return b.String()
}

var _ domain.ResultSink = (*ResultFile)(nil)
