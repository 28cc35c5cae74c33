package jwtverify

import (
	"log"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Logger is the logging interface the middleware writes to. Adapters for
// logrus, zap and zerolog are provided; anything with printf-style leveled
// methods fits.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NoopLogger discards everything. It is the default when no WithLogger
// option is given.
type NoopLogger struct{}

func (NoopLogger) Debugf(string, ...any) {}
func (NoopLogger) Infof(string, ...any)  {}
func (NoopLogger) Warnf(string, ...any)  {}
func (NoopLogger) Errorf(string, ...any) {}

// StdLogger writes through the standard library log package with a level
// prefix. Handy for examples and small programs.
type StdLogger struct{}

func (StdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (StdLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (StdLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (StdLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

// NewLogrusLogger adapts a logrus logger or entry.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return &logrusLogger{l}
}

type logrusLogger struct{ l logrus.FieldLogger }

func (a *logrusLogger) Debugf(format string, args ...any) { a.l.Debugf(format, args...) }
func (a *logrusLogger) Infof(format string, args ...any)  { a.l.Infof(format, args...) }
func (a *logrusLogger) Warnf(format string, args ...any)  { a.l.Warnf(format, args...) }
func (a *logrusLogger) Errorf(format string, args ...any) { a.l.Errorf(format, args...) }

// NewZapLogger adapts a zap sugared logger.
func NewZapLogger(l *zap.SugaredLogger) Logger {
	return &zapLogger{l}
}

type zapLogger struct{ l *zap.SugaredLogger }

func (a *zapLogger) Debugf(format string, args ...any) { a.l.Debugf(format, args...) }
func (a *zapLogger) Infof(format string, args ...any)  { a.l.Infof(format, args...) }
func (a *zapLogger) Warnf(format string, args ...any)  { a.l.Warnf(format, args...) }
func (a *zapLogger) Errorf(format string, args ...any) { a.l.Errorf(format, args...) }

// NewZerologLogger adapts a zerolog logger.
func NewZerologLogger(l zerolog.Logger) Logger {
	return &zerologLogger{l}
}

type zerologLogger struct{ l zerolog.Logger }

func (a *zerologLogger) Debugf(format string, args ...any) { a.l.Debug().Msgf(format, args...) }
func (a *zerologLogger) Infof(format string, args ...any)  { a.l.Info().Msgf(format, args...) }
func (a *zerologLogger) Warnf(format string, args ...any)  { a.l.Warn().Msgf(format, args...) }
func (a *zerologLogger) Errorf(format string, args ...any) { a.l.Error().Msgf(format, args...) }
