package store

import (
	"errors"
	"os"

	homedir "github.com/mitchellh/go-homedir"
)

// PathKind states what a command-line path must refer to.
type PathKind int

const (
	// ExistingFile must exist and must not be a directory.
	ExistingFile PathKind = iota
	// ExistingDir must exist and must be a directory.
	ExistingDir
	// OutputFile may be missing but must not be a directory.
	OutputFile
)

var (
	errNotFound    = errors.New("file not found")
	errIsDirectory = errors.New("is a directory")
	errNotDir      = errors.New("not a directory")
)

// ValidatePath expands a leading ~ in path and checks it against kind. It
// returns the expanded path.
func ValidatePath(path string, kind PathKind) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", resourceError(path, err)
	}

	info, err := os.Stat(expanded)
	switch {
	case err == nil:
	case os.IsNotExist(err) && kind == OutputFile:
		return expanded, nil
	case os.IsNotExist(err):
		return "", resourceError(expanded, errNotFound)
	default:
		return "", resourceError(expanded, err)
	}

	if kind == ExistingDir && !info.IsDir() {
		return "", resourceError(expanded, errNotDir)
	}
	if kind != ExistingDir && info.IsDir() {
		return "", resourceError(expanded, errIsDirectory)
	}
	return expanded, nil
}
