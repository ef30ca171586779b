package oslg

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// MaxLength is the default and maximum length of a logged message.
const MaxLength = 160

// Entry is a single accepted log record.
type Entry struct {
	Level   Level
	Message string
}

// Logger records leveled entries and tracks the highest level accepted
// since the last Clean. The zero value is not ready for use; call New.
// Thread-safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
	level   Level
	status  Level
}

// New returns an empty Logger reporting at InfoLevel.
func New() *Logger {
	return &Logger{level: InfoLevel}
}

// global state
var std = New()

// Default returns the process-wide Logger backing the package-level functions.
func Default() *Logger {
	return std
}

// Init resets the default logger to the reporting level found in config
// and clears its entries and status.
func Init(config Config) {
	std.Reset(config.ReportingLevel())
	std.Clean()
}

// Trim converts text to a string, strips surrounding whitespace and
// truncates it to MaxLength characters.
func Trim(text any) string {
	return TrimTo(text, MaxLength)
}

// TrimTo converts text to its display string, strips surrounding
// whitespace and truncates it to length characters. Values whose
// conversion panics yield "", as does a length <= 0.
func TrimTo(text any, length int) (s string) {
	if length <= 0 {
		return ""
	}
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	str, err := cast.ToStringE(text)
	if err != nil {
		str = fmt.Sprint(text)
	}
	s = strings.TrimSpace(str)
	if utf8.RuneCountInString(s) > length {
		end := 0
		for n := 0; n < length; n++ {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
		}
		s = strings.TrimSpace(s[:end])
	}
	return s
}

// Logs returns a copy of the accepted entries, oldest first.
func (l *Logger) Logs() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Level returns the current reporting level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Status returns the highest level accepted since the last Clean, or 0.
func (l *Logger) Status() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

func (l *Logger) is(level Level) bool {
	return l.Status() == level
}

// IsDebug reports whether the status is exactly DebugLevel.
func (l *Logger) IsDebug() bool { return l.is(DebugLevel) }

// IsInfo reports whether the status is exactly InfoLevel.
func (l *Logger) IsInfo() bool { return l.is(InfoLevel) }

// IsWarn reports whether the status is exactly WarnLevel.
func (l *Logger) IsWarn() bool { return l.is(WarnLevel) }

// IsError reports whether the status is exactly ErrorLevel.
func (l *Logger) IsError() bool { return l.is(ErrorLevel) }

// IsFatal reports whether the status is exactly FatalLevel.
func (l *Logger) IsFatal() bool { return l.is(FatalLevel) }

// Reset sets the reporting level. Levels outside DebugLevel..FatalLevel
// leave it unchanged. Returns the resulting reporting level.
func (l *Logger) Reset(level Level) Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level.Valid() {
		l.level = level
	}
	return l.level
}

// Clean drops all entries and zeroes the status. The reporting level is
// untouched and returned.
func (l *Logger) Clean() Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	l.status = 0
	return l.level
}

// Log records message at level, trimmed to MaxLength.
// See LogN.
func (l *Logger) Log(level Level, message any) Level {
	return l.LogN(level, message, MaxLength)
}

// LogN records message at level, trimmed to length characters (capped at
// MaxLength). The entry is ignored when the trimmed message is empty, the
// level is not valid or the level is below the reporting level.
// Returns the status, raised to level if it was lower.
func (l *Logger) LogN(level Level, message any, length int) Level {
	status, _ := l.record(level, message, length)
	return status
}

// record appends the entry if acceptable and reports whether it did.
func (l *Logger) record(level Level, message any, length int) (Level, bool) {
	if length > MaxLength {
		length = MaxLength
	}
	msg := TrimTo(message, length)

	l.mu.Lock()
	defer l.mu.Unlock()

	if msg == "" || !level.Valid() || level < l.level {
		return l.status, false
	}
	if level > l.status {
		l.status = level
	}
	l.entries = append(l.entries, Entry{Level: level, Message: msg})
	return l.status, true
}

// --- Package-level functions operating on the default logger ---

// Logs returns a copy of the default logger's entries.
func Logs() []Entry { return std.Logs() }

// CurrentLevel returns the default logger's reporting level.
func CurrentLevel() Level { return std.Level() }

// Status returns the default logger's status.
func Status() Level { return std.Status() }

// IsDebug reports whether the default logger's status is DebugLevel.
func IsDebug() bool { return std.IsDebug() }

// IsInfo reports whether the default logger's status is InfoLevel.
func IsInfo() bool { return std.IsInfo() }

// IsWarn reports whether the default logger's status is WarnLevel.
func IsWarn() bool { return std.IsWarn() }

// IsError reports whether the default logger's status is ErrorLevel.
func IsError() bool { return std.IsError() }

// IsFatal reports whether the default logger's status is FatalLevel.
func IsFatal() bool { return std.IsFatal() }

// Reset sets the default logger's reporting level.
func Reset(level Level) Level { return std.Reset(level) }

// Clean clears the default logger's entries and status.
func Clean() Level { return std.Clean() }

// Log records an entry on the default logger.
func Log(level Level, message any) Level { return std.Log(level, message) }

// LogN records an entry on the default logger with a custom message length.
func LogN(level Level, message any, length int) Level {
	return std.LogN(level, message, length)
}
