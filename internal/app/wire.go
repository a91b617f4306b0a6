package app

import (
	"github.com/sirupsen/logrus"

	"hashrecover/internal/candidate"
	"hashrecover/internal/digest"
	"hashrecover/internal/domain"
	rlog "hashrecover/internal/log"
	"hashrecover/internal/store"
)

// Wire bundles the collaborators of one run.
type Wire struct {
	Config  Config
	Files   *store.FileSystem
	Source  *candidate.Source
	Digest  domain.DigestFunc
	Results *store.ResultFile
	Log     logrus.FieldLogger
}

// NewWire validates cfg and constructs the dependency graph from it.
func NewWire(cfg Config, log logrus.FieldLogger) (*Wire, error) {
	cfg = cfg.withDefaults()

	// Fail on bad paths before anything is truncated.
	dict, err := store.ValidatePath(cfg.DictionaryDir, store.ExistingDir)
	if err != nil {
		return nil, err
	}
	hashes, err := store.ValidatePath(cfg.HashesPath, store.ExistingFile)
	if err != nil {
		return nil, err
	}
	output, err := store.ValidatePath(cfg.OutputPath, store.OutputFile)
	if err != nil {
		return nil, err
	}
	cfg.DictionaryDir, cfg.HashesPath, cfg.OutputPath = dict, hashes, output

	fn, err := digest.Lookup(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = digest.Default
	}

	fs := store.NewFileSystem()
	return &Wire{
		Config:  cfg,
		Files:   fs,
		Source:  candidate.New(dict, cfg.Lists, fs, rlog.Component(log, "candidate")),
		Digest:  fn,
		Results: store.NewResultFile(output, fs),
		Log:     log,
	}, nil
}
