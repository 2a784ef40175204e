package main

import (
	"fmt"
	"os"

	"github.com/larsvik/autodim/internal/app"
	"github.com/larsvik/autodim/pkg/scene"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: autodim-view <scene.yaml>")
		os.Exit(1)
	}

	sc, err := scene.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(sc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
