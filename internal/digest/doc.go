// Package digest selects the hash algorithm a run recovers plaintexts for.
//
// Every registered algorithm produces a 256-bit digest, so the target width
// stays fixed at domain.DigestSize whichever one is chosen. Exactly one
// algorithm is active per run.
//
//   - sha256       SHA-256 (github.com/minio/sha256-simd), the default
//   - sha3-256     SHA3-256 (golang.org/x/crypto/sha3)
//   - blake2s-256  BLAKE2s-256 (golang.org/x/crypto/blake2s)
//   - blake3       BLAKE3 with a 256-bit output (github.com/zeebo/blake3)
package digest
