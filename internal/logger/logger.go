// Package logger provides the process-wide structured logger used by the
// CLI, the HTTP facade, and the generator packages.
package logger

import (
	"io"
	"log/slog"
	"os"
)

var Log *slog.Logger

func init() {
	// Safe default so code that logs before Init runs (flag parsing
	// errors, package-level vars) doesn't nil-panic.
	Log = slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Init initializes the global logger. Output always goes to stderr;
// a non-empty logFile additionally appends to disk so candidate output
// on stdout is never interleaved with log lines.
func Init(level string, logFile string) error {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	writers := []io.Writer{os.Stderr}
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

// Debug logs at debug level
func Debug(msg string, args ...any) { Log.Debug(msg, args...) }

// Info logs at info level
func Info(msg string, args ...any) { Log.Info(msg, args...) }

// Warn logs at warn level
func Warn(msg string, args ...any) { Log.Warn(msg, args...) }

// Error logs at error level
func Error(msg string, args ...any) { Log.Error(msg, args...) }
