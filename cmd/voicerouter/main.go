// Command voicerouter normalizes speech-to-text provider responses and
// webhook callbacks into one transcript shape, from files or over HTTP.
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
