// Package logging configures the logrus logger used across brb.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the rotating log file inside the state directory.
const LogFileName = "brb.log"

// Options control where and how brb logs.
type Options struct {
	// StateDir holds the log file. Empty disables file logging.
	StateDir string
	// Level is a logrus level name; unknown names keep info.
	Level string
	// Format is "text" or "json".
	Format string
	// Debug forces debug level and mirrors entries to Stderr.
	Debug bool
	// Stderr receives mirrored entries; defaults to os.Stderr.
	Stderr io.Writer
}

// Configure sets up logrus with rotation.
func Configure(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()
	switch strings.ToLower(opts.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logger.SetLevel(logrus.InfoLevel)
	if lvl, err := logrus.ParseLevel(strings.ToLower(opts.Level)); err == nil {
		logger.SetLevel(lvl)
	}
	if opts.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	var writers []io.Writer
	if opts.StateDir != "" {
		if err := os.MkdirAll(opts.StateDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating state directory %s: %w", opts.StateDir, err)
		}
		// Never closed: brb is one short-lived process and exit releases the file.
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(opts.StateDir, LogFileName),
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   false,
		})
	}
	if opts.Debug {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writers = append(writers, stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
