package oslg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelValues(t *testing.T) {
	assert.Equal(t, Level(1), DebugLevel)
	assert.Equal(t, Level(2), InfoLevel)
	assert.Equal(t, Level(3), WarnLevel)
	assert.Equal(t, Level(4), ErrorLevel)
	assert.Equal(t, Level(5), FatalLevel)
	assert.Equal(t, []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}, AllLevels())
}

func TestTag(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{0, ""},
		{-1, ""},
		{6, ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tag(tt.level))
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestMsg(t *testing.T) {
	tests := []struct {
		status   Level
		expected string
	}{
		{0, ""},
		{DebugLevel, "Debugging ..."},
		{InfoLevel, "Success! No errors, no warnings"},
		{WarnLevel, "Partial success, raised non-fatal warnings"},
		{ErrorLevel, "Partial success, encountered non-fatal errors"},
		{FatalLevel, "Failure, triggered fatal errors"},
		{-4, ""},
		{9, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Msg(tt.status), "status %d", tt.status)
	}
	assert.NotEqual(t, "Debugging ...", Msg(FatalLevel))
}

func TestParseLevel_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected Level
	}{
		{"level", WarnLevel, WarnLevel},
		{"int", 4, ErrorLevel},
		{"int8", int8(1), DebugLevel},
		{"float truncates", 2.9, InfoLevel},
		{"numeric string", "5", FatalLevel},
		{"name", "debug", DebugLevel},
		{"padded name", " Info ", InfoLevel},
		{"short warn", "WARN", WarnLevel},
		{"long warn", "warning", WarnLevel},
		{"error", "ERROR", ErrorLevel},
		{"fatal", "Fatal", FatalLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l)
		})
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	inputs := []any{nil, "", "verbose", "10", 0, -1, 6, []int{1}, struct{}{}}

	for _, in := range inputs {
		l, err := ParseLevel(in)
		assert.ErrorIs(t, err, ErrInvalidLevel, "input %#v", in)
		assert.Equal(t, Level(0), l)
	}
}
