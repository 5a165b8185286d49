package main

import (
	"os"

	"github.com/TwirlySeal/duit/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
