// Package candidate generates candidate plaintexts in stages of increasing
// cost.
//
// Stages
//
//   - one    every line of the girl-names list
//   - two    every line of the boy-names list
//   - three  each name from stages one and two, lower-cased, in all 2^n
//     upper/lower-case variants, each followed by 0 to 9999 (unpadded)
//   - four   every line of the general word dictionary
//   - five   every four-symbol string over Alphabet
//
// # Memory
//
// No stage is materialised in full. Stage three holds the variants of one
// word at a time and emits 10,000 candidates per variant; stage five holds
// the 71^3 three-symbol prefixes and emits the 71 completions of one prefix
// per batch.
package candidate
