package main

import (
	"os"

	"github.com/funscript-tools/fsdiff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
