/*
uifmt runs the console display helpers from a shell.

Usage:

	uifmt <command> [flags]

Available Commands:

	badge      Print badge classes for a level, status or resource kind
	time       Format a timestamp
	version    Print version information
*/
package main

import (
	"os"

	"github.com/aliuygur/consoleui/cmd/uifmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
