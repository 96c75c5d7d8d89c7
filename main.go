package main

import (
	"os"

	"github.com/re-libas/relibas-server/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
