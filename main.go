package main

import (
	"log"
	"os"

	"sigwatch/cmd"
	"sigwatch/internal/monitor"
)

func main() {
	// Configure logger for detailed output.
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Set up a deferred function to recover from panics.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v", r)
			os.Exit(1)
		}
	}()

	if err := cmd.Execute(); err != nil {
		// Cobra has already printed the error (and usage, for argument
		// errors). The exit code carries the underlying OS error number.
		os.Exit(monitor.ExitCode(err))
	}
}
