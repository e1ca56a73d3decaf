package config

import (
	"os"

	"github.com/rsaxena/tirepace/log"
)

// InitLogging creates the logger according to the resolved CLI values
// and installs it as the process default.
func InitLogging() *log.Logger {
	var logger *log.Logger
	opts := []log.Option{log.WithCaller(false)}
	if LogFilter != "" {
		opts = append(opts, log.WithFilters(LogFilter))
	}
	switch LogFormat {
	case "json":
		logger = log.New(os.Stderr, parseLogLevel(LogLevel, log.InfoLevel), opts...)
	default:
		logger = log.DevLogger(os.Stderr, parseLogLevel(LogLevel, log.InfoLevel), opts...)
	}
	log.ResetDefault(logger)
	return logger
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}
