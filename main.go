package main

import (
	"fmt"
	"os"

	"github.com/oxidamotion/Tikauto/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	fmt.Printf("Tikauto v%s starting...\n", version)

	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "tikauto: %v\n", err)
		os.Exit(1)
	}
}
