package domain

import (
	"errors"
	"strings"
)

// Level is a CEFR proficiency tier controlling the register and complexity
// of generated replies.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Level parsing errors.
var (
	// ErrLevelMissing is returned when no level was supplied at all.
	ErrLevelMissing = errors.New("proficiency level is required")

	// ErrLevelUnknown is returned when the supplied level is not a CEFR tier.
	ErrLevelUnknown = errors.New("unknown proficiency level")
)

// Levels returns the recognized tiers in ascending order.
func Levels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// ParseLevel validates a caller-supplied level string against the CEFR
// enumeration. Matching is case-insensitive and ignores surrounding
// whitespace; that is the only normalization applied. Every value outside
// the enumeration is rejected, never defaulted.
func ParseLevel(s string) (Level, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrLevelMissing
	}
	switch Level(strings.ToUpper(trimmed)) {
	case LevelA1:
		return LevelA1, nil
	case LevelA2:
		return LevelA2, nil
	case LevelB1:
		return LevelB1, nil
	case LevelB2:
		return LevelB2, nil
	case LevelC1:
		return LevelC1, nil
	case LevelC2:
		return LevelC2, nil
	}
	return "", ErrLevelUnknown
}
