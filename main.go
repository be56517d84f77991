package main

import (
	"os"

	"github.com/learnloop/learnloop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
