// Command greenevent estimates the environmental footprint and sustainability
// economics of planned events.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/greenevent/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	return cli.NewRootCmd(version).Execute()
}

// extractExitCode maps a command error onto the process exit code and prints
// it. An ExitError carries its own code; any other error exits with 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}
