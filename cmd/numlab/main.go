package main

import (
	"os"

	"numlab/cmd/numlab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
