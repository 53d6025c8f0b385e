// Package main provides the sqlint CLI entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
