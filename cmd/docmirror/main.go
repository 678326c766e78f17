package main

import (
	"os"

	"github.com/docmirror/docmirror-cli/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
