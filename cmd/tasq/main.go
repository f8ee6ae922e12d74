package main

import (
	"fmt"
	"os"

	"tasq/internal/cli"
	"tasq/internal/config"
)

func main() {
	// Configuration is loaded once at startup; defaults are used when no
	// config file exists yet.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
