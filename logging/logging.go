package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var zerologLevels = map[LogLevel]zerolog.Level{
	LogLevelDebug: zerolog.DebugLevel,
	LogLevelInfo:  zerolog.InfoLevel,
	LogLevelWarn:  zerolog.WarnLevel,
	LogLevelError: zerolog.ErrorLevel,
}

type Logger struct {
	zl zerolog.Logger
}

// NewLogger writes to w at the given level ("debug", "info", ...). console selects the human
// readable zerolog console writer, otherwise one JSON object per line is written.
func NewLogger(w io.Writer, level string, console bool) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return &Logger{zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}, nil
}

// NewNopLogger discards everything.
func NewNopLogger() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WriteToLog writes an info message
func (l *Logger) WriteToLog(message string) {
	l.WriteLog(message, LogLevelInfo)
}

func (l *Logger) WriteLog(message string, level LogLevel) {
	zl, ok := zerologLevels[level]
	if !ok {
		zl = zerolog.InfoLevel
	}
	l.zl.WithLevel(zl).Msg(message)
}

// Zerolog exposes the underlying logger for structured fields.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zl
}
