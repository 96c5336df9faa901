package main

import (
	"os"

	"github.com/DjordjeVuckovic/truthtable/cmd/truthtable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
