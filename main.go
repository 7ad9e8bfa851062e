package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/parlolabs/parlo/cmd"
)

func main() {
	// Optional .env for API keys; system environment wins when absent.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
