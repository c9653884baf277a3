// Package main provides the scriptorium CLI: a document revision store
// served over HTTP, with commands for initializing and loading the store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
