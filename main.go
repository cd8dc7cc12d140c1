// Package main is the entry point for the camelsnake CLI.
package main

import "camelsnake.dev/pkg/camelsnake/cmd"

func main() {
	cmd.Execute()
}
