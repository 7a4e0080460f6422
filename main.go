package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/contestkit-labs/contestkit/internal/cli"
	clierrors "github.com/contestkit-labs/contestkit/internal/errors"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		var exitErr *clierrors.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierrors.ExitGeneralError)
	}
}
