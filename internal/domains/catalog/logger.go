package catalog

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// BadgerLogger routes badger messages to zerolog.
type BadgerLogger struct{}

func NewBadgerLogger() *BadgerLogger {
	return new(BadgerLogger)
}

func (l *BadgerLogger) Errorf(format string, args ...any) {
	log.Error().Msgf("badger: "+strings.TrimSpace(format), args...)
}

func (l *BadgerLogger) Warningf(format string, args ...any) {
	log.Warn().Msgf("badger: "+strings.TrimSpace(format), args...)
}

func (l *BadgerLogger) Infof(format string, args ...any) {
	log.Debug().Msgf("badger: "+strings.TrimSpace(format), args...)
}

func (l *BadgerLogger) Debugf(format string, args ...any) {
	log.Trace().Msgf("badger: "+strings.TrimSpace(format), args...)
}
