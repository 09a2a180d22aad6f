package root

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flarebyte/kbdlayout/cmd/kbdlayout-tools/diagnose"
	"github.com/flarebyte/kbdlayout/cmd/kbdlayout-tools/lookup"
	"github.com/flarebyte/kbdlayout/cmd/kbdlayout-tools/report"
	"github.com/flarebyte/kbdlayout/cmd/kbdlayout-tools/show"
	"github.com/flarebyte/kbdlayout/cmd/kbdlayout-tools/version"
	"github.com/flarebyte/kbdlayout/internal/app"
)

// NewRootCmd creates the root command for kbdlayout-tools.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kbdlayout-tools",
		Short: "Inspect keyboard layout backends and the KLID catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.PersistentFlags().StringP(app.FlagConfig, "c", "", "Path to config file (.cue)")
	cmd.PersistentFlags().Bool(app.FlagStrict, false, "Exit with status 1 when the layout cannot be read")
	cmd.PersistentFlags().BoolP(app.FlagVerbose, "v", false, "Trace each backend attempt on stderr")

	// Subcommands
	cmd.AddCommand(report.NewCmd())
	cmd.AddCommand(show.NewCmd())
	cmd.AddCommand(lookup.NewCmd())
	cmd.AddCommand(diagnose.NewCmd())
	cmd.AddCommand(version.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

type exitCoder interface {
	ExitCode() int
}

// Main runs the CLI and returns the process exit status. Errors are printed
// to stderr as a single line, without usage or stack traces.
func Main(args []string, stdout, stderr io.Writer) int {
	err := Execute(args, stdout, stderr)
	if err == nil {
		return 0
	}
	code := 1
	ec, isExitCoder := err.(exitCoder)
	if isExitCoder {
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" && isExitCoder {
		return code
	}
	if msg == "" {
		msg = "error"
	}
	_, _ = io.WriteString(stderr, msg+"\n")
	return code
}
