package version

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/kbdlayout/internal/buildinfo"
	"github.com/flarebyte/kbdlayout/internal/catalog"
)

// NewCmd implements `kbdlayout-tools version`.
func NewCmd() *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the CLI version",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagShort || !flagJSON {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "kbdlayout %s\n", buildinfo.Summary())
				return err
			}

			// JSON goes to stdout, a human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "kbdlayout version: %s\n", buildinfo.Summary())
			out := map[string]string{}
			for k, v := range buildinfo.Fields() {
				out[k] = v
			}
			out["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
			return catalog.EncodeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
