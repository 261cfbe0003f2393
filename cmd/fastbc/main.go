// Command fastbc computes betweenness centrality on a directed
// weighted graph read from a file, using the clustered Louvain+Brandes
// pipeline of package bc, or the exact fallback with --exact.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var ce *cliError
		if errors.As(err, &ce) {
			fmt.Fprintln(os.Stderr, "fastbc:", ce.Error())
			os.Exit(int(ce.code))
		}
		fmt.Fprintln(os.Stderr, "fastbc:", err)
		os.Exit(int(exitBadArgs))
	}
	os.Exit(int(exitOK))
}
