package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"hospital-booking-server/internal/config"
)

// New builds the application logger. In debug mode output goes to a console
// writer on stderr; otherwise JSON lines go to stdout and to a rotating file.
// The returned closer releases the log file and is safe to call when no file is open.
func New(cfg *config.Config) (zerolog.Logger, io.Closer) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Debug {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		return zerolog.New(out).Level(level).With().Timestamp().Logger(), nopCloser{}
	}

	file := NewRotatingFile(cfg.Log)
	logger := zerolog.New(zerolog.MultiLevelWriter(os.Stdout, file)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, file
}

// NewRotatingFile returns a size-based rotating file sink.
func NewRotatingFile(cfg config.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
