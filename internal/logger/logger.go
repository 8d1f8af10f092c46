package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance.
var Log = logrus.New()

// Init configures the global logger from the application settings.
func Init(level, environment string) {
	Log.SetOutput(os.Stderr)

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", level, err)
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	switch strings.ToLower(environment) {
	case "production", "staging":
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}
