//go:build ignore

// Generates man pages: go run ./cmd/gendoc [dir]
package main

import (
	"fmt"
	"os"

	"github.com/samzong/vmc/cmd"
	"github.com/spf13/cobra/doc"
)

func main() {
	dir := "./docs/man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	header := &doc.GenManHeader{
		Title:   "VMC",
		Section: "1",
		Source:  "vmc " + cmd.Version,
		Manual:  "VMC Manual",
	}

	if err := doc.GenManTree(cmd.RootCmd(), header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Man pages generated in %s\n", dir)
}
