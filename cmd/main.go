package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitStartup = 1 // bad flags, config or node definitions
	ExitPanic   = 3
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ExitPanic)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(ExitStartup)
	}
}
