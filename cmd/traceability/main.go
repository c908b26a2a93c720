package main

import (
	"os"

	"github.com/johnny-rice/shredvardson-dl-starter-sub005/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
