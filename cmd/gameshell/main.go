package main

import (
	"os"

	"github.com/Omen-of-Aecio/gameshell/cmd/gameshell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
