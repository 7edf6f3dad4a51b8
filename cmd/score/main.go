// Command score ranks career areas for 15 answers given on the command line.
//
//	score 5 4 3 5 2 4 5 3 2 4 5 1 3 4 5
//	score --breakdown --json 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
