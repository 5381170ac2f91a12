// Package logging is the leveled stderr logger shared by the report commands.
package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLogLevel parses and sets the global level. Unknown names are ignored and reported as false.
func SetLogLevel(s string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	return true
}

// ApplyLogLevel sets the level from a flag value and warns when the name is unknown.
func ApplyLogLevel(s string) {
	if !SetLogLevel(s) {
		Warnf("unknown log level %q, keeping %s", s, GetLogLevel())
	}
}

// GetLogLevel returns the current global level.
func GetLogLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func logf(l Level, format string, args ...interface{}) {
	if GetLogLevel() > l {
		return
	}
	// No args: print verbatim so literal % in file names is not mangled by fmt.
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", l, format)
		return
	}
	baseLogger.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

// Debugf logs per-file and timing detail.
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }

// Infof logs progress of a run.
func Infof(format string, a ...interface{}) { logf(LevelInfo, format, a...) }

// Warnf logs recoverable problems such as an unknown flag value.
func Warnf(format string, a ...interface{}) { logf(LevelWarn, format, a...) }

// Errorf logs failures that do not abort the process, such as a failed export from the viewer.
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the time elapsed since start at debug level. Use with defer.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
