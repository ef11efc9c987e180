// Package logging wraps log/slog the way the teacher's companion CLI
// wraps it: a package-level logger, multi-writer to stdout plus an
// optional file, and a shortened time format.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Log is the process-wide logger installed by Init. Callers that never
// call Init get a usable default (stdout, Info level).
var Log = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Init installs the process-wide logger at the given level ("debug",
// "info", "warn", "error"; anything else defaults to "info"), writing
// to stdout and, if logFile is non-empty, appending to that file too.
func Init(level, logFile string) error {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	writers := []io.Writer{os.Stdout}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		writers = append(writers, f)
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format("15:04:05"))
			}
			return a
		},
	})

	Log = slog.New(handler)
	slog.SetDefault(Log)

	return nil
}

// Debug logs at debug level on the process-wide logger.
func Debug(msg string, args ...any) { Log.Debug(msg, args...) }

// Info logs at info level on the process-wide logger.
func Info(msg string, args ...any) { Log.Info(msg, args...) }

// Warn logs at warn level on the process-wide logger.
func Warn(msg string, args ...any) { Log.Warn(msg, args...) }

// Error logs at error level on the process-wide logger.
func Error(msg string, args ...any) { Log.Error(msg, args...) }
