// main package for tokswap command-line tool
// Package main is the entry point for the tokswap CLI.
package main

import "tokswap.dev/pkg/tokswap/cmd"

func main() {
	cmd.Execute()
}
