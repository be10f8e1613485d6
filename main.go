package main

import (
	"os"

	"github.com/priyam/learnsphere/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
