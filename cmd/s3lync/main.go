// File: cmd/s3lync/main.go
package main

import (
	"fmt"
	"os"

	// Explicitly import the provider package to ensure the store implementations
	// register themselves via their init() functions
	_ "s3lync/internal/provider"
)

func main() {
	app, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize application:", err)
		os.Exit(1)
	}
	Execute(app)
}
