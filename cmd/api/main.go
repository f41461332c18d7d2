package main

import (
	"fmt"
	"os"

	"github.com/screenline/cinebook/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cinebook: %v\n", err)
		os.Exit(1)
	}
}
