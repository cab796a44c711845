package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// errNoInput is a usage error; its text matches the usage patterns in
// pesel.ExitCodeForError.
var errNoInput = errors.New("requires at least 1 identifier argument or piped input")

// collectInputs returns args verbatim, or reads stdin when args is empty.
// An interactive terminal on stdin is never read.
func collectInputs(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if isTerminal(in) {
		return nil, errNoInput
	}

	inputs, err := readLines(in)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, errNoInput
	}
	return inputs, nil
}

// readLines returns trimmed lines, skipping blanks and # comments.
func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return lines, nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
