// Package debuglog provides levelled logging on top of the standard logger.
// The global level comes from the CALCULATOR_DEBUG environment variable;
// callers may pass a local level to override it for one subsystem.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelTrace

	UseGlobal Level = 255
)

const envKey = "CALCULATOR_DEBUG"

var (
	GlobalLevel = ParseLevel(os.Getenv(envKey))
)

// ParseLevel maps a level name to a Level. Unknown or empty names mean info.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace
	case "verbose", "debug":
		return LevelVerbose
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "off":
		return LevelOff
	default:
		return LevelInfo
	}
}

func Log(prefix string, level Level, local Level, format string, args ...interface{}) {
	if !ShouldLog(level, local) {
		return
	}
	message := fmt.Sprintf(format, args...)
	if prefix != "" {
		log.Printf("[%s] %s", prefix, message)
	} else {
		log.Print(message)
	}
}

func ShouldLog(level Level, local Level) bool {
	effective := GlobalLevel
	if local != UseGlobal {
		effective = local
	}
	return level <= effective
}

// CloseWithLog closes c and logs a failure at error level under name.
// Safe to call with a nil closer.
func CloseWithLog(name string, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		Log("", LevelError, UseGlobal, "%s: %v", name, err)
	}
}
