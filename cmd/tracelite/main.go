// Command tracelite renders a scene file (.obj, .gltf/.glb, or a YAML scene
// manifest) to a PNG image using a CPU ray tracer.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
