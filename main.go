// Package main gg reports which repositories under a directory need attention:
// uncommitted modifications, staged changes or commits not yet pushed.
package main

import (
	"os"

	"github.com/apiarycd/gg/internal"
)

func main() {
	internal.Run(os.Args[1:])
}
