// Example program demonstrating the verconfig library API.
//
// Run from the repo root:
//
//	go run ./example/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/releasekit/verconfig/pkg/verconfig"
)

func main() {
	result, err := verconfig.Load(verconfig.Options{Path: "."})
	if err != nil {
		log.Fatalf("resolving configuration: %v", err)
	}

	if result.Source != "" {
		fmt.Printf("# loaded from %s\n", result.Source)
	} else {
		fmt.Println("# built-in defaults")
	}

	rendered, err := result.RenderYAML()
	if err != nil {
		log.Fatalf("rendering configuration: %v", err)
	}
	os.Stdout.Write(rendered)
}
