package commands

import (
	"log/slog"
	"os"
)

// ConfigureLogger installs the process-wide slog logger. Verbose lowers the
// level to debug, quiet raises it to error; verbose wins when both are set.
func ConfigureLogger(verbose, quiet bool) {
	level := slog.LevelInfo

	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
