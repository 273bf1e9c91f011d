package main

import (
	"os"

	"github.com/k0de1ne/hh-parser-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
