package log

import (
	"io"

	"github.com/p7r0x7/vainpath"
	"github.com/sirupsen/logrus"
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = "info"

// New returns a logger writing text records to w at the named level.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
	})
	return logger, nil
}

// Discard returns a logger that drops every record.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Component scopes log records to one part of the program.
func Component(l logrus.FieldLogger, name string) *logrus.Entry {
	return l.WithField("component", name)
}

// Path renders a user-supplied path for display, abbreviating every
// directory but the last element.
func Path(p string) string { return vainpath.Simplify(p) }
