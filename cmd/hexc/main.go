// Command hexc compiles H-expressions into typed string diagrams.
package main

import (
	"os"

	"github.com/hexlang/hexc/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
