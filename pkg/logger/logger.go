package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stdout
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the log level from configuration; unknown values keep info.
func SetLevel(level string) {
	if parsed, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(parsed)
	}
}
