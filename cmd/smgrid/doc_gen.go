//go:build ignore
// +build ignore

package main

import (
	"log"

	smgrid "github.com/mithrel/smgrid/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := smgrid.NewRootCmd()

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "SMGRID",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
