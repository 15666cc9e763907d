// ABOUTME: Entry point for the storefront CLI
// ABOUTME: Terminal client for browsing the storefront catalog

package main

import (
	"fmt"
	"os"

	"github.com/mstore/storefront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
