package main

import (
	"os"

	"github.com/inayah-hub/DASHBOARDS/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
