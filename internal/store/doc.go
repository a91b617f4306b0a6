// Package store provides the file-system collaborators of a run.
//
// It reads word lists and hash files line by line, validates the paths
// given on the command line and appends recovered results to the output
// file. Every I/O failure is returned as an errors.ResourceError carrying
// the offending path.
//
//   - FileSystem    line reader, byte appender and truncation
//   - ResultFile    the results sink written in real time
//   - ValidatePath  existence and kind checks with ~ expansion
package store
