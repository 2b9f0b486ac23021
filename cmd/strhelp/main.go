package main

import (
	"os"

	"github.com/msto63/strhelp/cmd/strhelp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
