package main

import (
	"os"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/commands"
)

func main() {
	if err := commands.SetupFrontendCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
