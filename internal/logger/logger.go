// Package logger provides the verbose log for the cotiza CLI.
// Messages are written to stderr only when --verbose is set, except for
// Error which is always written.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs catalogue and storage internals.
func Debug(format string, args ...any) {
	write(false, "[DEBUG] ", format, args...)
}

// Info logs a step the user asked for.
func Info(format string, args ...any) {
	write(false, "[INFO] ", format, args...)
}

// Warn logs a recovered failure, such as a failed seed load.
func Warn(format string, args ...any) {
	write(false, "[WARN] ", format, args...)
}

// Error logs a failure regardless of verbose mode.
func Error(format string, args ...any) {
	write(true, "[ERROR] ", format, args...)
}

// Section prints a header that groups the lines of one operation.
func Section(name string) {
	write(false, "\n=== ", "%s ===", name)
}

func write(always bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !always && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
