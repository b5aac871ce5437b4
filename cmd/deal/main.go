// Package main deals solvable boards on the command line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// main deals a board from the command line arguments.
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "loading .env file: %v\n", err)
	}
	cmd := newCommand(os.Stdout)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
