package main

import (
	"os"

	"github.com/alibabarta/hotspot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
