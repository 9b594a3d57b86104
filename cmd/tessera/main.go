package main

import (
	"fmt"
	"os"

	"github.com/tessera-network/go-tessera/cmd/tessera/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
