// Package app wires application dependencies for the CLI.
//
// It validates the paths in Config, builds the file-system store, the
// candidate source, the digest function and the results sink, and exposes
// them via the Wire struct. App.Crack runs a recovery over them.
package app
