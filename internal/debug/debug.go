package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "GRIDTUI_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
	checked bool
)

// Init directs debug logging to the file at path, creating parent
// directories as needed.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

func initLocked(path string) error {
	checked = true
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	closeLocked()
	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput sends debug logging to w. Passing nil disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	checked = true
	closeLocked()
	if w != nil {
		logger = newLogger(w)
	}
}

// Enabled reports whether debug messages are written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	ensureLocked()
	return logger != nil
}

// Close closes the debug log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	ensureLocked()
	if logger == nil {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

func ensureLocked() {
	if checked {
		return
	}
	checked = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "gridtui",
	})
}
