package shaders

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// logLevel controls the level of the default logger.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// loggerPtr stores the active logger. SetLogger may replace it at any time.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(defaultLogger())
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// SetVerbose enables or disables debug logging of the default logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the logger used by the package and by backend/opengl.
// Pass nil to restore the default stderr logger controlled by SetVerbose.
//
// Debug records describe probed capabilities, the compiled variant and the
// resolved uniform locations. Usage errors are not logged; they go to the
// diagnostics writer of the shader (see WithDiagnostics).
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = defaultLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
