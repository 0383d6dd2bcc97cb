package main

import (
	"os"

	"github.com/Victor-Rafael0/MATHPATH/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
