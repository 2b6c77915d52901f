package main

import (
	"os"

	"github.com/enigmatic-code/run/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
