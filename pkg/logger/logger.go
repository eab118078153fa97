// Package logger provides the service's structured logging: a JSON slog
// logger plus a gin middleware that tags every request with a request id.
package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Local and dev environments log at debug.
func New(appEnv string) *slog.Logger {
	level := slog.LevelInfo
	if appEnv == "local" || appEnv == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
