package buildinfo

import (
	"runtime"
	"strings"

	"github.com/flarebyte/kbdlayout/cli"
)

// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags; cli.Version and cli.Date are
// honored when the values here are empty.

var (
	// Version is the semantic version or custom string. Empty means cli.Version,
	// then "dev".
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time (optional). Falls back to cli.Date.
	Date = ""
	// BuiltBy is an optional builder identifier.
	BuiltBy = ""
)

func version() string {
	v := Version
	if v == "" {
		v = cli.Version
	}
	if v == "" {
		v = "dev"
	}
	return v
}

func date() string {
	if Date != "" {
		return Date
	}
	return cli.Date
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := version()
	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d := date(); d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}

// Fields returns the build metadata and target platform for JSON output.
func Fields() map[string]string {
	return map[string]string{
		"version":  version(),
		"commit":   Commit,
		"date":     date(),
		"built_by": BuiltBy,
		"go":       runtime.Version(),
		"go_os":    runtime.GOOS,
		"go_arch":  runtime.GOARCH,
	}
}
