package root

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/flarebyte/kbdlayout/internal/app"
	"github.com/flarebyte/kbdlayout/internal/config"
	"github.com/flarebyte/kbdlayout/internal/layout"
)

// NewRootCmd creates the kbdlayout command. It reports the active keyboard
// layout and accepts no flags, arguments or subcommands.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kbdlayout",
		Short: "Print the identifier of the active keyboard layout",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := app.NewChain(config.Default())
			if err != nil {
				return err
			}
			_, err = layout.Report(app.Context(cmd), chain, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
}

// Execute runs the report. args are never handed to cobra, so help flags,
// subcommand names and completion requests are ignored like any other word.
func Execute(args []string, stdout, stderr io.Writer) error {
	_ = args
	cmd := NewRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// Main runs the report and returns the process exit status, which is 0
// whether or not the layout could be read.
func Main(args []string, stdout, stderr io.Writer) int {
	_ = Execute(args, stdout, stderr)
	return 0
}
