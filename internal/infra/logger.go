package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger constructs a zerolog.Logger with sane defaults for the service.
func NewLogger(appEnv string) zerolog.Logger {
	return NewLoggerTo(os.Stdout, appEnv)
}

// NewLoggerTo is NewLogger with an explicit sink. The console writer is only
// used for development output on a terminal-bound writer.
func NewLoggerTo(out io.Writer, appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()

	if appEnv == "development" && out == os.Stdout {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	return logger
}

// NewFileLogger writes JSON logs to a size-rotated file. It is used by
// programs that own the terminal. Close the returned writer on exit.
func NewFileLogger(path, appEnv string) (zerolog.Logger, io.Closer) {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
	return NewLoggerTo(sink, appEnv), sink
}

// Logger aliases the zerolog.Logger so callers outside the infra package can
// depend on the logging contract without importing the third-party module
// directly.
type Logger = zerolog.Logger
