// Command listkit browses and searches lists of items loaded from YAML files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rshade/listkit/internal/cli"
	"github.com/rshade/listkit/pkg/version"
)

// exitUsage is returned for errors the user can fix by changing arguments.
const exitUsage = 2

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrNoItemFiles), errors.Is(err, cli.ErrIndexDirection):
		return exitUsage
	default:
		return 1
	}
}
