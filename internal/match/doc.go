// Package match drives a candidate source against a shrinking set of target
// digests.
//
// Every candidate is hashed once and looked up against all outstanding
// targets; each matching occurrence, duplicates included, is written to the
// result sink immediately and removed from the set. The run ends when the
// source is exhausted or no targets remain.
package match
