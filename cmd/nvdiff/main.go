package main

import (
	"os"

	"github.com/msto63/nvdiff/cmd/nvdiff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
