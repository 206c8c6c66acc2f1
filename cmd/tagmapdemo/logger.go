package main

import (
	"github.com/rs/zerolog"

	"github.com/davidroman0O/tagmap"
)

// zerologLogger adapts a zerolog.Logger to tagmap.Logger.
type zerologLogger struct {
	logger zerolog.Logger
}

func newZerologLogger(logger zerolog.Logger) tagmap.Logger {
	return &zerologLogger{logger: logger}
}

func (l *zerologLogger) Debug(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l *zerologLogger) Info(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warn(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Error(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}
