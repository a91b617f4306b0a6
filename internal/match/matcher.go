package match

import (
	"github.com/sirupsen/logrus"

	"hashrecover/internal/domain"
	"hashrecover/internal/metrics"
)

// progressInterval is the number of attempts between progress records.
const progressInterval = 1_000_000

// Summary reports the outcome of a run.
type Summary struct {
	Analysed int     // target occurrences at the start of the run
	Solved   uint64  // occurrences recovered
	Attempts uint64  // candidates tested
	Elapsed  float64 // seconds
}

// Matcher tests candidates from a source against a set of target digests
// and reports every recovered occurrence to a sink.
type Matcher struct {
	digest  domain.DigestFunc
	sink    domain.ResultSink
	metrics *metrics.Metrics
	log     logrus.FieldLogger
}

// New returns a Matcher hashing with digest, reporting to sink and counting
// into m.
func New(digest domain.DigestFunc, sink domain.ResultSink, m *metrics.Metrics, log logrus.FieldLogger) *Matcher {
	return &Matcher{digest: digest, sink: sink, metrics: m, log: log}
}

// Run pulls candidates until src is exhausted or targets is empty. It stops
// at the first sink or source error.
func (m *Matcher) Run(src domain.CandidateSource, targets *TargetSet) (Summary, error) {
	analysed := targets.Len()

	for !targets.Empty() && src.HasNext() {
		plaintext := src.Next()
		sum := m.digest([]byte(plaintext))

		for n := targets.Claim(sum); n > 0; n-- {
			if err := m.sink.Emit(sum, plaintext); err != nil {
				return m.summary(analysed), err
			}
			m.metrics.RecordSolved()
			m.log.WithField("digest", sum).WithField("remaining", targets.Len()).Infof("Recovered %q", plaintext)
		}

		m.metrics.RecordAttempt()
		if attempts := m.metrics.Attempts(); attempts%progressInterval == 0 {
			m.log.WithField("attempts", attempts).WithField("remaining", targets.Len()).Debug("Progress")
		}
	}

	if err := src.Err(); err != nil {
		return m.summary(analysed), err
	}
	return m.summary(analysed), nil
}

func (m *Matcher) summary(analysed int) Summary {
	return Summary{
		Analysed: analysed,
		Solved:   m.metrics.Solved(),
		Attempts: m.metrics.Attempts(),
		Elapsed:  m.metrics.ElapsedSeconds(),
	}
}
