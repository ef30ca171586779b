package oslg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Levels define log severity.
type Level int

const (
	// DebugLevel marks debugging entries.
	DebugLevel Level = iota + 1
	// InfoLevel marks informational entries. It is the default reporting level.
	InfoLevel
	// WarnLevel marks non-fatal warnings.
	WarnLevel
	// ErrorLevel marks non-fatal errors.
	ErrorLevel
	// FatalLevel marks fatal errors.
	FatalLevel
)

// ErrInvalidLevel is returned by ParseLevel for values outside DebugLevel..FatalLevel.
var ErrInvalidLevel = errors.New("invalid log level")

// Index 0 is the miss value for both tables.
var tags = [...]string{
	"",
	"DEBUG",
	"INFO",
	"WARNING",
	"ERROR",
	"FATAL",
}

var msgs = [...]string{
	"",
	"Debugging ...",
	"Success! No errors, no warnings",
	"Partial success, raised non-fatal warnings",
	"Partial success, encountered non-fatal errors",
	"Failure, triggered fatal errors",
}

// AllLevels returns all supported levels, lowest first.
func AllLevels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}

// Valid reports whether l lies within DebugLevel..FatalLevel.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= FatalLevel
}

// String returns the display tag of the level, or "" if it is not valid.
func (l Level) String() string {
	return Tag(l)
}

// Tag returns the preset tag matching a log level (e.g. "DEBUG").
// Anything outside DebugLevel..FatalLevel maps to "".
func Tag(l Level) string {
	if l < 0 || int(l) >= len(tags) {
		return tags[0]
	}
	return tags[l]
}

// Msg returns the preset sentence matching a log status
// (e.g. "Failure, triggered fatal errors").
// A zero status, meaning nothing was logged yet, maps to "" as do
// values outside the table.
func Msg(status Level) string {
	if status < 0 || int(status) >= len(msgs) {
		return msgs[0]
	}
	return msgs[status]
}

// ParseLevel converts v to a Level. It accepts anything coercible to an
// integer (ints, floats, numeric strings) as well as level names such as
// "warn" or "WARNING".
func ParseLevel(v any) (Level, error) {
	if s, ok := v.(string); ok {
		if l, found := levelByName(s); found {
			return l, nil
		}
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	l := Level(n)
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %d out of range [%d, %d]", ErrInvalidLevel, n, DebugLevel, FatalLevel)
	}
	return l, nil
}

func toInt(v any) (int, error) {
	if l, ok := v.(Level); ok {
		return int(l), nil
	}
	return cast.ToIntE(v)
}

func levelByName(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "FATAL":
		return FatalLevel, true
	}
	return 0, false
}
