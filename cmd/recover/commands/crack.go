package commands

import (
	"github.com/sirupsen/logrus"

	"hashrecover/internal/app"
	"hashrecover/internal/errors"
)

// runCrack wires and runs one recovery. Failures are logged by message
// only; the stack trace goes to the debug level.
func runCrack(cfg app.Config, logger *logrus.Logger) error {
	err := crack(cfg, logger)
	if err != nil {
		logger.Error(err.Error())
		logger.Debug(errors.PrintErrorWithStackTrace(err))
	}
	return err
}

func crack(cfg app.Config, logger *logrus.Logger) error {
	w, err := app.NewWire(cfg, logger)
	if err != nil {
		return err
	}
	_, err = app.New(w).Crack()
	return err
}
