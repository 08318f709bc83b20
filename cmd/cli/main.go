package main

import (
	"os"

	"github.com/authx-dev/authx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
