// Package logging configures the application logger.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns a JSON-formatted logger at the given level.
// An unknown level falls back to info.
func Setup(level string) *logrus.Logger {
	logger := &logrus.Logger{
		Formatter: &logrus.JSONFormatter{},
		Out:       os.Stdout,
		Level:     logrus.InfoLevel,
	}

	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.Level = parsed
	}

	return logger
}
