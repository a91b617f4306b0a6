package app

import (
	"time"

	"hashrecover/internal/errors"
	rlog "hashrecover/internal/log"
	"hashrecover/internal/match"
	"hashrecover/internal/metrics"
)

// App runs one recovery over a wired dependency graph.
type App struct {
	w *Wire
}

// New returns an App over w.
func New(w *Wire) *App { return &App{w: w} }

// Crack truncates the results file, loads the target digests and runs the
// matcher until every target is recovered or the candidates run out.
func (a *App) Crack() (match.Summary, error) {
	cfg := a.w.Config
	log := rlog.Component(a.w.Log, "app")

	if err := a.w.Files.Truncate(cfg.OutputPath); err != nil {
		return match.Summary{}, err
	}
	counters := metrics.New(time.Now())

	lines, err := a.w.Files.ReadLines(cfg.HashesPath)
	if err != nil {
		return match.Summary{}, err
	}
	targets, err := match.ParseTargets(lines, cfg.SkipMalformed, log)
	if err != nil {
		return match.Summary{}, errors.WithStackTraceAndPrefix(err, "parsing %s", rlog.Path(cfg.HashesPath))
	}
	if targets.Empty() {
		log.Warnf("No digests found in %s", rlog.Path(cfg.HashesPath))
	}

	log.WithField("algorithm", cfg.Algorithm).
		WithField("targets", targets.Len()).
		Infof("Recovering into %s using %s", rlog.Path(cfg.OutputPath), rlog.Path(cfg.DictionaryDir))

	m := match.New(a.w.Digest, a.w.Results, counters, rlog.Component(a.w.Log, "matcher"))
	summary, err := m.Run(a.w.Source, targets)
	if err != nil {
		return summary, err
	}

	log.Infof("%d hash(es) analysed, %d password(s) found.", summary.Analysed, summary.Solved)
	log.Infof("Execution time: %.3f secs.", summary.Elapsed)
	log.Infof("Attempts: %d", summary.Attempts)
	return summary, nil
}
