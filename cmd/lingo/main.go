// Package main is the single-binary entrypoint for Lingo.
package main

import "github.com/globallingo/lingo/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
