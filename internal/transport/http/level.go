package http

import (
	"errors"
	"fmt"
	"strings"
)

// Level controls how much of an exchange LogInterceptor records.
type Level int32

const (
	// LevelNone disables tracing entirely.
	LevelNone Level = iota
	// LevelBasic records the request and response lines.
	LevelBasic
	// LevelHeaders additionally records request and response headers.
	LevelHeaders
	// LevelBody additionally records plaintext request and response bodies.
	LevelBody
)

// ErrInvalidLevel indicates that a trace level is absent or unknown.
var ErrInvalidLevel = errors.New("invalid trace level, use none instead")

// DefaultLevel returns the level used when none is configured:
// full bodies in debug mode, nothing otherwise.
func DefaultLevel(debug bool) Level {
	if debug {
		return LevelBody
	}

	return LevelNone
}

// ParseLevel converts a textual level ("none", "basic", "headers", "body") to Level.
func ParseLevel(text string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "none":
		return LevelNone, nil
	case "basic":
		return LevelBasic, nil
	case "headers":
		return LevelHeaders, nil
	case "body":
		return LevelBody, nil
	default:
		return LevelNone, fmt.Errorf("%w: '%s'", ErrInvalidLevel, text)
	}
}

// IsValid reports whether l is one of the four known levels.
func (l Level) IsValid() bool {
	switch l {
	case LevelNone, LevelBasic, LevelHeaders, LevelBody:
		return true
	default:
		return false
	}
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelBasic:
		return "basic"
	case LevelHeaders:
		return "headers"
	case LevelBody:
		return "body"
	default:
		return fmt.Sprintf("Level(%d)", int32(l))
	}
}
