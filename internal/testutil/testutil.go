// Package testutil holds helpers shared by command tests.
package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flarebyte/kbdlayout/internal/app"
	"github.com/flarebyte/kbdlayout/internal/config"
	"github.com/flarebyte/kbdlayout/internal/layout"
)

// Static is a backend that always answers id.
func Static(name, id string) layout.Backend {
	return layout.Backend{Name: name, Querier: layout.QuerierFunc(func(context.Context) (string, error) {
		return id, nil
	})}
}

// Failing is a backend that always fails with msg.
func Failing(name, msg string) layout.Backend {
	return layout.Backend{Name: name, Querier: layout.QuerierFunc(func(context.Context) (string, error) {
		return "", errors.New(msg)
	})}
}

// StubChain makes app.NewChain return a chain of backends for the rest of
// the test.
func StubChain(t *testing.T, backends ...layout.Backend) {
	t.Helper()
	old := app.NewChain
	app.NewChain = func(config.Config) (*layout.Chain, error) {
		return layout.ChainOf(backends...), nil
	}
	t.Cleanup(func() { app.NewChain = old })
}

// WriteFile writes content under a fresh temp dir and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}
