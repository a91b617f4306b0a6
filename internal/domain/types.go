package domain

import (
	"encoding/hex"
	"strings"
)

// DigestSize is the width in bytes of every supported digest.
const DigestSize = 32

// Digest is a fixed-width 256-bit hash value.
type Digest [DigestSize]byte

// Hex returns the upper-case hex form written to the results file.
func (d Digest) Hex() string { return strings.ToUpper(hex.EncodeToString(d[:])) }

// String returns the lower-case hex form used in log output.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// DigestFunc hashes the UTF-8 bytes of a candidate plaintext.
type DigestFunc func(plaintext []byte) Digest
