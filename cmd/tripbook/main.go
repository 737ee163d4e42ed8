package main

import (
	"os"

	"github.com/Iron-Ham/tripbook/internal/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
