package main

import (
	"os"

	"github.com/tchason/RBDateTime/cmd/rbdt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
