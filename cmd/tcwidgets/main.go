package main

import (
	"os"

	"github.com/baaaaaaaka/tcwidgets/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
