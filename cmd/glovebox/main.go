// ABOUTME: Entry point for the glovebox binary.
// ABOUTME: Loads optional .env overrides and executes the root Cobra command.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
