package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// compileCUE reads and compiles a .cue file.
func compileCUE(path string) (cue.Value, error) {
	if filepath.Ext(path) != ".cue" {
		return cue.Value{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	return compileBytes(data)
}

func compileBytes(data []byte) (cue.Value, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

// optionalField returns the field when present, checking its kind.
func optionalField(v cue.Value, name string, kind cue.Kind, kindName string) (cue.Value, bool, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return cue.Value{}, false, nil
	}
	if f.IncompleteKind() != kind {
		return cue.Value{}, false, fmt.Errorf("invalid type for field: %s (expected %s)", name, kindName)
	}
	return f, true, nil
}
