// Command primstep builds a weighted graph from flags and walks Prim's
// algorithm over it one vertex at a time, printing the role of every
// vertex after each step.
//
//	primstep --vertices 3 --edge 1,2,5 --edge 2,3,1 --edge 1,3,10 --start 1 --verify
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
