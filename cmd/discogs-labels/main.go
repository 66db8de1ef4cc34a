package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr, newChromedpRenderer)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code. Any
// failure is reported as a single line on stderr.
func run(ctx context.Context, args []string, stderr io.Writer, newRenderer rendererFactory) int {
	cmd := newRootCommand(newRenderer)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "discogs-labels: interrupted")
		} else {
			fmt.Fprintf(stderr, "discogs-labels: %v\n", err)
		}
		return 1
	}
	return 0
}
