// scfetch downloads public single-cell datasets and stores them as
// annotated-matrix (.h5ad) containers.
package main

import "github.com/singlecell-tools/scfetch/cmd"

func main() {
	cmd.Execute()
}
