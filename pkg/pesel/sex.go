package pesel

import (
	"fmt"
	"strings"
)

// Sex is the holder's sex as encoded by the tenth digit.
type Sex int

const (
	// SexUnknown is the zero value; it never appears on a parsed Identifier.
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

// String returns "male", "female" or "unknown".
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Sex) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is case-insensitive.
func (s *Sex) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "male", "m":
		*s = SexMale
	case "female", "f":
		*s = SexFemale
	case "unknown", "":
		*s = SexUnknown
	default:
		return fmt.Errorf("unknown sex %q", string(text))
	}
	return nil
}
