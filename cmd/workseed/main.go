package main

import (
	"os"

	"github.com/workseedhq/workseed/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
