// Package debug provides opt-in diagnostic logging. TK_DEBUG enables
// it; by default messages go to stderr, and TK_DEBUG_LOG routes them to
// a size-rotated log file instead.
package debug

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	enabled = os.Getenv("TK_DEBUG") != ""
	sink    io.Writer
)

func init() {
	if !enabled {
		return
	}
	if logPath := os.Getenv("TK_DEBUG_LOG"); logPath != "" {
		sink = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
	} else {
		sink = os.Stderr
	}
}

// Enabled reports whether debug logging is on.
func Enabled() bool {
	return enabled
}

// Logf writes a timestamped diagnostic line when debugging is enabled.
func Logf(format string, args ...interface{}) {
	if !enabled {
		return
	}
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(sink, "[%s] %s\n", timestamp, msg)
}
