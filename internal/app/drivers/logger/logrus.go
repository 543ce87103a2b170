package logger

import (
	"os"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the logger of the command line tools. Output goes to
// stderr so stdout stays free for the tool's result.
func NewLogrusLogger(appEnv string, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	switch appEnv {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
