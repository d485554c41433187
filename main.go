package main

import (
	"os"

	"github.com/Okyu59/TubeLingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
