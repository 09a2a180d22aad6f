// Package app holds what the kbdlayout commands share: the loaded config,
// the backend chain and the catalog, plus the exit error type.
package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/flarebyte/kbdlayout/internal/catalog"
	"github.com/flarebyte/kbdlayout/internal/config"
	"github.com/flarebyte/kbdlayout/internal/layout"
)

// Persistent flag names defined on the root command.
const (
	FlagConfig  = "config"
	FlagStrict  = "strict"
	FlagVerbose = "verbose"
)

// NewChain builds the backend chain for a config. Tests replace it.
var NewChain = func(cfg config.Config) (*layout.Chain, error) {
	return layout.NewChain(cfg.Backends...)
}

// Session is the per-invocation state of a command.
type Session struct {
	Config config.Config

	strict bool
	trace  io.Writer
}

// Open loads the config named by --config.
func Open(cmd *cobra.Command) (*Session, error) {
	cfg, err := config.Load(StringFlag(cmd, FlagConfig))
	if err != nil {
		return nil, err
	}
	s := &Session{Config: cfg, strict: cfg.StrictExit || BoolFlag(cmd, FlagStrict)}
	if BoolFlag(cmd, FlagVerbose) {
		s.trace = cmd.ErrOrStderr()
	}
	return s, nil
}

// Chain builds the backend chain, traced when --verbose is set.
func (s *Session) Chain() (*layout.Chain, error) {
	c, err := NewChain(s.Config)
	if err != nil {
		return nil, err
	}
	if s.trace != nil {
		c = c.WithTrace(s.trace)
	}
	return c, nil
}

// Catalog returns the embedded catalog with config entries merged in.
func (s *Session) Catalog() (*catalog.Catalog, error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	if len(s.Config.Catalog) == 0 {
		return c, nil
	}
	return c.Merge(s.Config.Catalog)
}

// QueryFailed returns the error a command ends with after a failed query:
// nil by default, exit status 1 in strict mode.
func (s *Session) QueryFailed() error {
	if s.strict {
		return ExitError{Code: 1}
	}
	return nil
}

// Context returns the command context, or Background when a command runs
// outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// StringFlag reads a local or inherited flag; a missing flag reads as "".
func StringFlag(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}

// BoolFlag reads a local or inherited boolean flag.
func BoolFlag(cmd *cobra.Command, name string) bool {
	return StringFlag(cmd, name) == "true"
}

// ExitError ends the process with Code. An empty Msg is not printed.
type ExitError struct {
	Code int
	Msg  string
}

func (e ExitError) Error() string { return e.Msg }
func (e ExitError) ExitCode() int { return e.Code }
