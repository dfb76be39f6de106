// cmd/orderbook/main.go
//
// This is the entry point for the orderbook CLI.
//
// Flow:
// 1. Make sure .orderbook/ exists in the project directory
// 2. Load config (file, then environment, then flags)
// 3. Open the session journal
// 4. Run either the full-screen TUI or the numbered console loop

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
