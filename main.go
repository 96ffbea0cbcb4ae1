package main

import (
	"os"

	"github.com/idelarosa/subjunto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
