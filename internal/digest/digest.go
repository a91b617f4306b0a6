package digest

import (
	"sort"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"hashrecover/internal/domain"
	"hashrecover/internal/errors"
)

// Default is the algorithm used when none is named.
const Default = "sha256"

// registry maps algorithm names to 256-bit digest functions. It is never
// written after package initialisation.
var registry = map[string]domain.DigestFunc{
	"sha256":      func(b []byte) domain.Digest { return sha256.Sum256(b) },
	"sha3-256":    func(b []byte) domain.Digest { return sha3.Sum256(b) },
	"blake2s-256": func(b []byte) domain.Digest { return blake2s.Sum256(b) },
	"blake3":      func(b []byte) domain.Digest { return blake3.Sum256(b) },
}

// Lookup returns the digest function registered under name. An empty name
// selects Default.
func Lookup(name string) (domain.DigestFunc, error) {
	if name == "" {
		name = Default
	}
	fn, ok := registry[name]
	if !ok {
		return nil, errors.WithStackTrace(errors.AlgorithmUnavailableError{Name: name})
	}
	return fn, nil
}

// Names lists the registered algorithms in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
