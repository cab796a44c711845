package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/pesel/internal/cli"
	"github.com/vvka-141/pesel/pkg/pesel"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(pesel.ExitPanic)
		}
	}()

	if err := cli.Execute(os.Args[1:]); err != nil {
		os.Exit(pesel.ExitCodeForError(err))
	}
}
