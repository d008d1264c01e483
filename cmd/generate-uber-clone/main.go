package main

import (
	"os"

	"github.com/Sambuddha007/Uber-Clone-Frontend/internal/commands"
)

func main() {
	if err := commands.GenerateUberCloneCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
