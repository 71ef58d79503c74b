package main

import (
	"os"

	"github.com/dshills/crwrite/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
