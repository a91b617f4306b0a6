package main

import (
	"os"

	"hashrecover/cmd/recover/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
