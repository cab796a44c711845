package pesel_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/pesel/pkg/pesel"
)

func TestExitCodeForError(t *testing.T) {
	_, missing := pesel.Parse("")
	_, malformed := pesel.Parse("123")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, pesel.ExitSuccess},
		{"missing input", missing, pesel.ExitMissingInput},
		{"malformed input", malformed, pesel.ExitMalformedInput},
		{"wrapped malformed", fmt.Errorf("line 3: %w", malformed), pesel.ExitMalformedInput},
		{"invalid config", fmt.Errorf("load: %w", pesel.ErrInvalidConfig), pesel.ExitConfigError},
		{"batch failures", pesel.ErrInvalidIdentifiers, pesel.ExitInvalidIdentifiers},
		{"unknown flag", errors.New("unknown flag --foo"), pesel.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), pesel.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), pesel.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--format\""), pesel.ExitUsageError},
		{"general error", errors.New("something went wrong"), pesel.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pesel.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := pesel.Parse("")
	if got := err.Error(); got != "pesel: missing input" {
		t.Errorf("unexpected message %q", got)
	}

	_, err = pesel.Parse("44051401358")
	want := `pesel: malformed input "44051401358": check digit does not match`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
