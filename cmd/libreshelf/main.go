package main

import (
	"fmt"
	"os"

	"github.com/libreshelf/libreshelf/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
