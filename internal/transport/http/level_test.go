package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLevel tests the ParseLevel function.
func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Level
		valid    bool
	}{
		{name: "none", input: "none", expected: LevelNone, valid: true},
		{name: "basic", input: "basic", expected: LevelBasic, valid: true},
		{name: "headers", input: "headers", expected: LevelHeaders, valid: true},
		{name: "body", input: "body", expected: LevelBody, valid: true},
		{name: "uppercase", input: "BODY", expected: LevelBody, valid: true},
		{name: "with spaces", input: " headers ", expected: LevelHeaders, valid: true},
		{name: "empty string", input: "", expected: LevelNone, valid: false},
		{name: "unknown", input: "verbose", expected: LevelNone, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			if !tt.valid {
				require.ErrorIs(t, err, ErrInvalidLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

// TestLevelString tests that String and ParseLevel round-trip for every known level.
func TestLevelString(t *testing.T) {
	t.Parallel()

	for _, level := range []Level{LevelNone, LevelBasic, LevelHeaders, LevelBody} {
		parsed, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
		assert.True(t, level.IsValid())
	}

	assert.Equal(t, "Level(42)", Level(42).String())
	assert.False(t, Level(42).IsValid())
	assert.False(t, Level(-1).IsValid())
}

// TestDefaultLevel tests the DefaultLevel function.
func TestDefaultLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LevelBody, DefaultLevel(true))
	assert.Equal(t, LevelNone, DefaultLevel(false))
}
