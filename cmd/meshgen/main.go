// Command meshgen generates Istio routing manifests on local disk.
package main

import (
	"github.com/meshforge/meshgen/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}
