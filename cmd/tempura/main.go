// Package main is the entry point for the tempura CLI.
package main

import (
	"os"

	"github.com/pigeonworks-llc/tempura/cmd/tempura/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
