package main

import (
	"os"

	"github.com/flarebyte/kbdlayout/cmd/kbdlayout-tools/root"
)

func main() {
	os.Exit(root.Main(os.Args[1:], os.Stdout, os.Stderr))
}
