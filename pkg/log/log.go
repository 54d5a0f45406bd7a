// Package log configures the logrus entry shared across the CLI.
package log

import (
	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	return logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"program": "pinbump",
		"version": version,
	})
}

func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.SetLevel(lvl)
}
