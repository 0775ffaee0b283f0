package main

import (
	"os"

	"github.com/BrandonKowalski/selectmultiple/cmd/selectdemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
