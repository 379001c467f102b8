package main

import (
	"os"

	"github.com/gridkit/gridview/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
