package main

import (
	"os"

	"github.com/Abeljo/ECO-SCHEDULER/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
