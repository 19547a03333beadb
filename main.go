// main is the entry point for the testsmellrank CLI.
package main

import (
	"fmt"
	"os"

	"github.com/TANJUMAJERIN/testsmellRank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
