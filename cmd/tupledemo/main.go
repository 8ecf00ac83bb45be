// The tupledemo command runs the sequence and partial application
// operations on values given on the command line.
//
// Each argument is decoded as a JSON value if possible; anything
// else is treated as a string, so
//
//	tupledemo concat --with hello,world 1 2 3 4
//
// prints
//
//	[1 2 3 4 hello world]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
