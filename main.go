package main

import (
	"os"

	"github.com/harlens/harlens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
