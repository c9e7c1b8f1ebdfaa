package log

import (
	"io"
	"os"
	"sync"

	"github.com/paularlott/logger"
	logslog "github.com/paularlott/logger/slog"
)

var (
	mu     sync.RWMutex
	output io.Writer = os.Stderr
	std    logger.Logger
)

func init() {
	Configure("warn", "console")
}

// Configure sets the level and format of the package logger.
// Logs are always written to stderr, stdout is reserved for the inventory.
func Configure(level, format string) {
	mu.Lock()
	defer mu.Unlock()

	std = logslog.New(logslog.Config{
		Level:  level,
		Format: format,
		Writer: output,
	})
}

// SetOutput redirects log output, used by tests
func SetOutput(w io.Writer, level string) {
	mu.Lock()
	output = w
	mu.Unlock()
	Configure(level, "console")
}

func current() logger.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

func Debug(msg string, keysAndValues ...any) {
	current().Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	current().Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	current().Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	current().Error(msg, keysAndValues...)
}
