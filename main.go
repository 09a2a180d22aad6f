// Command kbdlayout at the module root, so that
// `go install github.com/flarebyte/kbdlayout@latest` works; it is the same
// program as ./cmd/kbdlayout.
package main

import (
	"os"

	"github.com/flarebyte/kbdlayout/cmd/kbdlayout/root"
)

func main() {
	os.Exit(root.Main(os.Args[1:], os.Stdout, os.Stderr))
}
