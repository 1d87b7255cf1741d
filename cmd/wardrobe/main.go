// Package main provides the wardrobe CLI.
package main

import "github.com/mesh-intelligence/wardrobe/internal/cli"

func main() {
	cli.Execute()
}
