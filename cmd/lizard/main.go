package main

import (
	"os"

	"github.com/lizardpack/lizard/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
