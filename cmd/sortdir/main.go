package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"sortdir/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err for the user. Cancellation is silent; input and
// configuration mistakes get a pointer to the usage text.
func reportError(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintln(w, "sortdir:", err)
	if services.IsUserError(err) {
		fmt.Fprintln(w, "Run 'sortdir --help' for usage.")
	}
}
