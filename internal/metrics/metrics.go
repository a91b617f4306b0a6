// Package metrics counts attempts and recovered digests for one run.
package metrics

import "time"

// Metrics holds monotonic counters for a single run. It is not safe for
// concurrent use; the matcher is its only writer.
type Metrics struct {
	solved   uint64
	attempts uint64
	start    time.Time
}

// New starts a run clock at start.
func New(start time.Time) *Metrics { return &Metrics{start: start} }

// RecordAttempt counts one candidate tested.
func (m *Metrics) RecordAttempt() { m.attempts++ }

// RecordSolved counts one target occurrence recovered.
func (m *Metrics) RecordSolved() { m.solved++ }

// Attempts returns the number of candidates tested.
func (m *Metrics) Attempts() uint64 { return m.attempts }

// Solved returns the number of target occurrences recovered.
func (m *Metrics) Solved() uint64 { return m.solved }

// ElapsedSeconds returns the wall-clock time since start.
func (m *Metrics) ElapsedSeconds() float64 { return time.Since(m.start).Seconds() }
