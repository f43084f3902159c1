// brb - be right back
// Source: https://github.com/brb-cli/brb

package main

import (
	"os"

	"github.com/brb-cli/brb/internal/cli"
	clierrors "github.com/brb-cli/brb/internal/errors"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}
	if !cli.IsExitError(err) {
		cliErr := clierrors.AsCLIError(err)
		if cliErr == nil {
			cliErr = clierrors.Wrap(err, clierrors.Runtime)
		}
		clierrors.PrintError(cliErr)
	}
	os.Exit(cli.ExitCode(err))
}
