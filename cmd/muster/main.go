package main

import (
	"os"

	"github.com/msto63/musterwerk/cmd/muster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
