package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/stau/cmd/stau"
	"github.com/arthur-debert/stau/internal/version"
)

func main() {
	rootCmd := stau.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "STAU",
		Section: "1",
		Source:  "stau " + version.Version,
		Manual:  "stau manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
