// Package strength implements the structural strength heuristic: a pure
// per-credential predicate over length and character-class coverage.
package strength

import (
	"unicode"
	"unicode/utf8"
)

// Level is the heuristic strength classification of a credential.
type Level int

const (
	// Weak indicates a credential under 8 characters or with poor
	// character-class coverage.
	Weak Level = iota
	// Medium indicates letters combined with digits or special characters.
	Medium
	// Strong indicates upper, lower, digit and special all present.
	Strong
)

// Levels lists the levels in ascending order, for deterministic reporting.
var Levels = []Level{Weak, Medium, Strong}

// String returns the human-readable level name.
func (l Level) String() string {
	switch l {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// Check classifies a credential. Anything under 8 characters is Weak; all
// four character classes make it Strong; a letter plus a digit or special
// character makes it Medium; everything else is Weak. Length is counted in
// characters, not bytes, so multi-byte runes count once.
func Check(credential string) Level {
	if utf8.RuneCountInString(credential) < 8 {
		return Weak
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range credential {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if hasUpper && hasLower && hasDigit && hasSpecial {
		return Strong
	}
	if (hasUpper || hasLower) && (hasDigit || hasSpecial) {
		return Medium
	}
	return Weak
}

// Breakdown counts credentials per level.
func Breakdown(credentials []string) map[Level]int {
	counts := make(map[Level]int, len(Levels))
	for _, c := range credentials {
		counts[Check(c)]++
	}
	return counts
}
