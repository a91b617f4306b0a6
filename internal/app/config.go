package app

import "hashrecover/internal/candidate"

// Config holds runtime wiring options for building the app.
type Config struct {
	HashesPath    string          // one hex digest per line
	OutputPath    string          // results file, truncated at the start of a run
	DictionaryDir string          // directory holding the word lists
	Lists         candidate.Lists // word-list file names inside DictionaryDir
	Algorithm     string          // digest algorithm name, see package digest
	SkipMalformed bool            // drop malformed hash-file lines instead of failing
}

// withDefaults fills the zero-valued options.
func (c Config) withDefaults() Config {
	def := candidate.DefaultLists()
	if c.Lists.GirlNames == "" {
		c.Lists.GirlNames = def.GirlNames
	}
	if c.Lists.BoyNames == "" {
		c.Lists.BoyNames = def.BoyNames
	}
	if c.Lists.Words == "" {
		c.Lists.Words = def.Words
	}
	return c
}
