// Command patrol traces a guard across board files and reports how many
// cells it covers and how many single obstructions would trap it.
//
// Usage:
//
//	patrol run  [--workers N] [--threshold N | --exact] FILE...
//	patrol trace [--loops] FILE
//
// Settings resolve as flags > PATROL_* environment (a .env file in the
// working directory is loaded first) > --config file > defaults.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
