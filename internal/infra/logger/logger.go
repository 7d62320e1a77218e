package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"school_register/internal/infra/config"
)

// New builds the process logger from configuration: JSON output for
// production-like environments, timestamped text otherwise. Logs go to
// stderr so they never interleave with the console menu on stdout.
func New(cfg *config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch cfg.Environment {
	case "production", "staging":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if err != nil {
		log.WithField("log_level", cfg.LogLevel).Warn("Invalid log level, defaulting to info")
	}
	return log
}
