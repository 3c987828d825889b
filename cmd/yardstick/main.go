// Command yardstick is the CLI entry point for unit-aware arithmetic
// and conversion.
package main

import (
	"github.com/mesh-intelligence/yardstick/internal/cli"
)

func main() {
	cli.Execute()
}
