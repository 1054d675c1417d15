package utils

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
)

var logLevels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// ConfigureLogging applies level to the application logger and to the
// request tracing of the API clients.
func ConfigureLogging(level string, out io.Writer) error {
	l, ok := logLevels[level]
	if !ok {
		return errors.Errorf("unsupported log level: %s", level)
	}

	zerolog.SetGlobalLevel(l)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})

	lr, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lr)
	logrus.SetOutput(out)

	return nil
}
