package store

import (
	"os"

	"hashrecover/internal/domain"
)

const fileMode os.FileMode = 0o644

// FileSystem reads word lists and hash files and appends results on the
// local disk. It holds no state.
type FileSystem struct{}

// NewFileSystem returns a disk-backed FileSystem.
func NewFileSystem() *FileSystem { return &FileSystem{} }

// ReadLines returns every line of path in file order.
func (*FileSystem) ReadLines(path string) ([]string, error) { return readLines(path) }

// AppendBytes appends b to path, creating it if absent.
func (*FileSystem) AppendBytes(path string, b []byte) error { return appendFile(path, b, fileMode) }

// Truncate empties path, creating it if absent.
func (*FileSystem) Truncate(path string) error { return truncateFile(path, fileMode) }

// Compile-time assertions that FileSystem implements the collaborator contracts.
var (
	_ domain.LineReader = (*FileSystem)(nil)
	_ domain.Appender   = (*FileSystem)(nil)
)
