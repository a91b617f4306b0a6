package candidate

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"hashrecover/internal/domain"
)

// Lists names the word-list files read from the dictionary directory.
type Lists struct {
	GirlNames string // stage one
	BoyNames  string // stage two
	Words     string // stage four
}

// DefaultLists returns the word-list file names expected in a dictionary
// directory.
func DefaultLists() Lists {
	return Lists{
		GirlNames: "girl_names.txt",
		BoyNames:  "boy_names.txt",
		Words:     "word_list_moby_all_moby_words.flat.txt",
	}
}

// Source is the staged candidate generator. Candidates are materialised in
// bounded batches: a whole word list, 10,000 suffixed variants of one case
// variant, or 71 completions of one brute-force prefix.
//
// A Source is not safe for concurrent use.
type Source struct {
	dir    string
	lists  Lists
	reader domain.LineReader
	log    logrus.FieldLogger

	stage  Stage
	loaded bool // the current word-list stage has been read
	err    error

	queue []string
	head  int

	// words loaded by stages one and two, replayed by stage three
	cache      []string
	cacheIndex int

	// case variants of one word (stage three) or brute-force prefixes (stage five)
	perms         []string
	prefixesBuilt bool
}

// New returns a Source reading word lists named by lists from dir.
func New(dir string, lists Lists, reader domain.LineReader, log logrus.FieldLogger) *Source {
	return &Source{
		dir:    dir,
		lists:  lists,
		reader: reader,
		log:    log,
		stage:  StageOne,
	}
}

// Stage returns the stage the source is generating from.
func (s *Source) Stage() Stage { return s.stage }

// Err returns the error that aborted generation, if any.
func (s *Source) Err() error { return s.err }

// HasNext reports whether a candidate is available, refilling the queue from
// the current stage when it is empty.
func (s *Source) HasNext() bool {
	if s.head == len(s.queue) {
		s.refill()
	}
	return s.head < len(s.queue)
}

// Next removes and returns the next candidate. It panics if HasNext has not
// reported a candidate.
func (s *Source) Next() string {
	if s.head == len(s.queue) {
		panic("candidate: Next called with no candidate available")
	}
	c := s.queue[s.head]
	s.queue[s.head] = ""
	s.head++
	return c
}

// refill loads the next batch, advancing through exhausted stages until a
// batch is produced or the source is complete.
func (s *Source) refill() {
	s.queue, s.head = s.queue[:0], 0
	if cap(s.queue) > 4*SuffixBatch {
		// release a drained word list rather than reuse its backing array
		s.queue = nil
	}
	for len(s.queue) == 0 && s.stage != StageComplete {
		exhausted, err := s.fill()
		if err != nil {
			s.err = err
			s.log.WithError(err).WithField("stage", s.stage).Debug("Generation aborted")
			s.stage, s.queue = StageComplete, s.queue[:0]
			return
		}
		if !exhausted {
			continue
		}
		next, retry := advance(s.stage)
		s.log.WithField("from", s.stage).WithField("to", next).Debug("Stage exhausted")
		s.stage, s.loaded = next, false
		if !retry {
			return
		}
	}
}

// fill adds one batch from the current stage to the queue, or reports the
// stage exhausted.
func (s *Source) fill() (exhausted bool, err error) {
	switch s.stage {
	case StageOne:
		return s.loadList(s.lists.GirlNames, true)
	case StageTwo:
		return s.loadList(s.lists.BoyNames, true)
	case StageThree:
		return s.fillCaseVariants(), nil
	case StageFour:
		return s.loadList(s.lists.Words, false)
	case StageFive:
		return s.fillAlphanumeric(), nil
	default:
		return true, nil
	}
}

func (s *Source) loadList(name string, cache bool) (bool, error) {
	if s.loaded {
		return true, nil
	}
	path := filepath.Join(s.dir, name)
	lines, err := s.reader.ReadLines(path)
	if err != nil {
		return false, err
	}
	s.loaded = true
	s.queue = lines
	if cache {
		s.cache = append(s.cache, lines...)
	}
	s.log.WithField("stage", s.stage).WithField("words", len(lines)).Debugf("Loaded %s", name)
	return false, nil
}

func (s *Source) fillCaseVariants() bool {
	for len(s.perms) == 0 {
		if s.cacheIndex == len(s.cache) {
			return true
		}
		word := strings.ToLower(s.cache[s.cacheIndex])
		s.cacheIndex++
		if n := utf8.RuneCountInString(word); n > maxVariantRunes {
			s.log.WithField("word", word).WithField("runes", n).Warn("Skipping case variants of long word")
			continue
		}
		s.perms = caseVariants(word)
	}
	variant := s.perms[0]
	s.perms = s.perms[1:]
	s.queue = appendSuffixed(s.queue, variant, SuffixBatch)
	return false
}

func (s *Source) fillAlphanumeric() bool {
	if !s.prefixesBuilt {
		s.prefixesBuilt = true
		s.perms = prefixes()
	}
	if len(s.perms) == 0 {
		return true
	}
	prefix := s.perms[0]
	s.perms = s.perms[1:]
	s.queue = appendCompleted(s.queue, prefix)
	return false
}

var _ domain.CandidateSource = (*Source)(nil)
