// Package commands defines the recover CLI and wires dependencies for a run.
//
// Commands
//
//   - recover      Recover plaintexts for the digests in a hashes file
//   - algorithms   List the digest algorithms accepted by --algorithm
//
// # Implementation
//
// The root command requires --hashes, --output and --dictionary; when any is
// missing or a flag is malformed the command returns a ConfigError, which
// Execute answers by printing usage and exiting successfully.
// Invalid paths and I/O failures are logged and end the process with a
// non-zero status.
package commands
