package main

import (
	"fmt"
	"os"

	"github.com/go-latch/latch/cmd/latch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
