// Package main provides the entry point for the healthbatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gustavdup/health-question-answer-generator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
