package match

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"hashrecover/internal/domain"
	"hashrecover/internal/errors"
)

// TargetSet counts the outstanding occurrences of each target digest. A
// digest listed twice must be recovered twice.
type TargetSet struct {
	counts map[domain.Digest]int
	total  int
}

// NewTargetSet returns a set holding one occurrence per argument.
func NewTargetSet(digests ...domain.Digest) *TargetSet {
	t := &TargetSet{counts: make(map[domain.Digest]int, len(digests))}
	for _, d := range digests {
		t.Add(d)
	}
	return t
}

// Add records one more outstanding occurrence of d.
func (t *TargetSet) Add(d domain.Digest) {
	t.counts[d]++
	t.total++
}

// Len returns the number of outstanding occurrences.
func (t *TargetSet) Len() int { return t.total }

// Empty reports whether every occurrence has been recovered.
func (t *TargetSet) Empty() bool { return t.total == 0 }

// Claim removes every outstanding occurrence of d and returns how many
// there were.
func (t *TargetSet) Claim(d domain.Digest) int {
	n, ok := t.counts[d]
	if !ok {
		return 0
	}
	delete(t.counts, d)
	t.total -= n
	return n
}

// ParseDigest decodes one hex-encoded digest. Hex case is ignored.
func ParseDigest(s string) (domain.Digest, error) {
	var d domain.Digest
	if len(s) != 2*domain.DigestSize {
		return d, fmt.Errorf("want %d hex characters, got %d", 2*domain.DigestSize, len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, err
	}
	return d, nil
}

// ParseTargets builds a TargetSet from the lines of a hash file. Blank lines
// are ignored. A malformed line fails the whole parse unless skipMalformed
// is set, in which case it is logged and dropped.
func ParseTargets(lines []string, skipMalformed bool, log logrus.FieldLogger) (*TargetSet, error) {
	t := NewTargetSet()
	for i, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		d, err := ParseDigest(text)
		if err != nil {
			bad := errors.MalformedDigestError{Line: i + 1, Text: text, Err: err}
			if !skipMalformed {
				return nil, errors.WithStackTrace(bad)
			}
			log.WithField("line", bad.Line).Warnf("Skipping malformed digest: %v", err)
			continue
		}
		t.Add(d)
	}
	return t, nil
}
