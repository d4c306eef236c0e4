package main

import (
	"os"

	"github.com/tmustier/resume-sessions/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
