// Package main provides the columbary CLI, a register of ashes storage
// records and columbarium locations backed by a hosted CRUD gateway or a
// local SQLite database.
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
