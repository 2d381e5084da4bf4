package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"tpstats/internal/cli"
)

func main() {
	// Load .env when present; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
