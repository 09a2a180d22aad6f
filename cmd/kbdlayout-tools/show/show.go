package show

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flarebyte/kbdlayout/internal/app"
	"github.com/flarebyte/kbdlayout/internal/catalog"
	"github.com/flarebyte/kbdlayout/internal/layout"
)

// Output is what `kbdlayout-tools show` prints.
type Output struct {
	ID      string         `json:"id"`
	Backend string         `json:"backend"`
	Entry   *catalog.Entry `json:"entry,omitempty"`
}

// NewCmd implements `kbdlayout-tools show`.
func NewCmd() *cobra.Command {
	var flagYAML bool
	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Show the active layout with its catalog entry",
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
			a, err := chain.Query(app.Context(cmd))
			if err != nil {
				if _, werr := fmt.Fprintln(cmd.ErrOrStderr(), layout.FailureMessage); werr != nil {
					return werr
				}
				return s.QueryFailed()
			}
			cat, err := s.Catalog()
			if err != nil {
				return err
			}
			out := Output{ID: a.ID, Backend: a.Backend}
			if e, ok := cat.Lookup(a.ID); ok {
				out.Entry = &e
			}
			if flagYAML {
				b, err := catalog.MarshalYAML(out)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			return catalog.EncodeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print YAML instead of JSON")
	return cmd
}
