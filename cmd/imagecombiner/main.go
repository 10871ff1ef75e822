// Command imagecombiner writes an image whose pixels alternate between two
// source images.
//
//	imagecombiner first.png second.png combined.png
package main

import (
	"os"

	"imagecombiner/internal/cli"
)

// Set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	os.Exit(int(cli.Execute(cli.NewRootCommand())))
}
