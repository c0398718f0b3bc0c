package main

import (
	"os"

	"github.com/idilsaglam/remotetodo/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
