package root

import (
	"bytes"
	"testing"

	"github.com/flarebyte/kbdlayout/internal/testutil"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

const (
	usLine      = "Current keyboard layout: 00000409\n"
	failureLine = "Failed to get the current keyboard layout\n"
)

func run(args ...string) runResult {
	var stdout, stderr bytes.Buffer
	code := Main(args, &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func assertResult(t *testing.T, got runResult, code int, stdout, stderr string) {
	t.Helper()
	if got.code != code {
		t.Fatalf("exit code: want %d, got %d (stderr %q)", code, got.code, got.stderr)
	}
	if got.stdout != stdout {
		t.Fatalf("stdout\nwant: %q\n got: %q", stdout, got.stdout)
	}
	if got.stderr != stderr {
		t.Fatalf("stderr\nwant: %q\n got: %q", stderr, got.stderr)
	}
}

func TestRoot_ReportsLayout(t *testing.T) {
	testutil.StubChain(t, testutil.Static("stub", "00000409"))
	assertResult(t, run(), 0, usLine, "")
}

func TestRoot_FailureExitsZero(t *testing.T) {
	testutil.StubChain(t, testutil.Failing("stub", "no input context"))
	assertResult(t, run(), 0, "", failureLine)
}

func TestRoot_NoBackends(t *testing.T) {
	testutil.StubChain(t)
	assertResult(t, run(), 0, "", failureLine)
}

func TestRoot_IgnoresExtraArguments(t *testing.T) {
	testutil.StubChain(t, testutil.Static("stub", "00000409"))
	assertResult(t, run("foo", "--bogus", "bar", "-z"), 0, usLine, "")

	testutil.StubChain(t, testutil.Failing("stub", "boom"))
	assertResult(t, run("foo", "--bogus"), 0, "", failureLine)
}

func TestRoot_NothingIsParsed(t *testing.T) {
	cases := [][]string{
		{"-h"},
		{"--help"},
		{"help"},
		{"version"},
		{"--version"},
		{"show"},
		{"lookup", "--by", "language", "en"},
		{"diagnose", "x"},
		{"--config"},
		{"-c", "/nope.cue"},
		{"--strict"},
		{"--verbose"},
		{"completion", "bash"},
		{"__complete", ""},
		{"--", "-x"},
	}
	for _, args := range cases {
		testutil.StubChain(t, testutil.Static("stub", "00000409"))
		got := run(args...)
		if got.code != 0 || got.stdout != usLine || got.stderr != "" {
			t.Fatalf("args %q: got %+v", args, got)
		}

		testutil.StubChain(t, testutil.Failing("stub", "boom"))
		got = run(args...)
		if got.code != 0 || got.stdout != "" || got.stderr != failureLine {
			t.Fatalf("args %q on failure: got %+v", args, got)
		}
	}
}

func TestRoot_NilArgs(t *testing.T) {
	testutil.StubChain(t, testutil.Static("stub", "00000409"))
	assertResult(t, run(nil...), 0, usLine, "")
}

func TestRoot_EmptyIdentifier(t *testing.T) {
	testutil.StubChain(t, testutil.Static("stub", ""))
	assertResult(t, run(), 0, "Current keyboard layout: \n", "")
}

func TestRoot_Idempotent(t *testing.T) {
	testutil.StubChain(t, testutil.Static("stub", "0000040C"))
	first, second := run(), run()
	if first != second {
		t.Fatalf("runs differ: %+v vs %+v", first, second)
	}
}

func TestRoot_FallsThroughFailingBackend(t *testing.T) {
	testutil.StubChain(t, testutil.Failing("a", "not running"), testutil.Static("b", "us"))
	assertResult(t, run(), 0, "Current keyboard layout: us\n", "")
}

func TestRoot_HasNoSubcommandsOrFlags(t *testing.T) {
	cmd := NewRootCmd()
	if n := len(cmd.Commands()); n != 0 {
		t.Fatalf("expected no subcommands, got %d", n)
	}
	if cmd.HasAvailableFlags() {
		t.Fatalf("expected no flags")
	}
}
