package report

import (
	"github.com/spf13/cobra"

	"github.com/flarebyte/kbdlayout/internal/app"
	"github.com/flarebyte/kbdlayout/internal/layout"
)

// NewCmd implements `kbdlayout-tools report`: the kbdlayout report line,
// with the config file, --strict and --verbose applied.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "report",
		Short:         "Print the active keyboard layout like kbdlayout does",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Open(cmd)
			if err != nil {
				return err
			}
			chain, err := s.Chain()
			if err != nil {
				return err
			}
			res, err := layout.Report(app.Context(cmd), chain, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !res.OK {
				return s.QueryFailed()
			}
			return nil
		},
	}
}
