package diagnose

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/flarebyte/kbdlayout/internal/app"
	"github.com/flarebyte/kbdlayout/internal/layout"
)

// Line is one backend result printed by `kbdlayout-tools diagnose`.
type Line struct {
	Backend string `json:"backend"`
	OK      bool   `json:"ok"`
	ID      string `json:"id"`
	Error   string `json:"error,omitempty"`
}

// NewCmd implements `kbdlayout-tools diagnose`.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "diagnose",
		Short:         "Query every layout backend and print one JSON line each",
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
			probes := chain.Probe(app.Context(cmd))
			if len(probes) == 0 {
				return printLine(cmd.OutOrStdout(), Line{Error: layout.ErrUnsupported.Error()})
			}
			for _, p := range probes {
				l := Line{Backend: p.Backend, OK: p.OK, ID: p.ID}
				if p.Err != nil {
					l.Error = p.Err.Error()
				}
				if err := printLine(cmd.OutOrStdout(), l); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printLine(w io.Writer, l Line) error {
	b, err := json.Marshal(l)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
