package diagnose

import (
	"bytes"
	"testing"

	"github.com/flarebyte/kbdlayout/internal/testutil"
)

func runDiagnose(t *testing.T) string {
	t.Helper()
	cmd := NewCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return stdout.String()
}

func TestDiagnose_OneLinePerBackend(t *testing.T) {
	testutil.StubChain(t,
		testutil.Failing("hyprland", "hyprctl: executable file not found"),
		testutil.Static("x11", "us"),
		testutil.Static("fixed", ""),
	)
	want := `{"backend":"hyprland","ok":false,"id":"","error":"hyprland: hyprctl: executable file not found"}` + "\n" +
		`{"backend":"x11","ok":true,"id":"us"}` + "\n" +
		`{"backend":"fixed","ok":true,"id":""}` + "\n"
	if got := runDiagnose(t); got != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, got)
	}
}

func TestDiagnose_NoBackends(t *testing.T) {
	testutil.StubChain(t)
	want := `{"backend":"","ok":false,"id":"","error":"no layout backend for this platform"}` + "\n"
	if got := runDiagnose(t); got != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, got)
	}
}
