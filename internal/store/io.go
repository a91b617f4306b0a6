package store

import (
	"bufio"
	"os"

	"hashrecover/internal/errors"
)

// maxLineSize bounds a single word-list or hash-file line.
const maxLineSize = 1 << 20

// readLines reads path line by line; CRLF endings are stripped.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, resourceError(path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, resourceError(path, err)
	}
	return lines, nil
}

// appendFile appends b to path, creating the file if it does not exist.
func appendFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, mode)
	if err != nil {
		return resourceError(path, err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return resourceError(path, err)
	}
	if err := f.Close(); err != nil {
		return resourceError(path, err)
	}
	return nil
}

// truncateFile empties path, creating it if it does not exist.
func truncateFile(path string, mode os.FileMode) error {
	if err := os.WriteFile(path, nil, mode); err != nil {
		return resourceError(path, err)
	}
	return nil
}

func resourceError(path string, err error) error {
	return errors.WithStackTrace(errors.ResourceError{Path: path, Err: err})
}
