package main

import (
	"os"

	"github.com/pseudo-lang/pseudo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
