package lookup

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flarebyte/kbdlayout/internal/app"
	"github.com/flarebyte/kbdlayout/internal/catalog"
)

// Output is what `kbdlayout-tools lookup` prints.
type Output struct {
	KLIDDrivers        map[string]string            `json:"klidDrivers"`
	VKToGlyphOverrides map[string]map[string]string `json:"vkToGlyphOverrides"`
	SCToVKOverrides    map[string]map[string]int    `json:"scToVkOverrides"`
	Entries            []catalog.Entry              `json:"entries"`
}

// NewCmd implements `kbdlayout-tools lookup`.
func NewCmd() *cobra.Command {
	var (
		flagBy    string
		flagWhere string
		flagYAML  bool
	)
	cmd := &cobra.Command{
		Use:           "lookup <values>",
		Short:         "Look up catalog layouts by language, klid or driver",
		Example:       "  kbdlayout-tools lookup --by language en,de\n  kbdlayout-tools lookup --by driver kbdus --where 'entry.language ~= \"en-US\"'",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagBy == "" {
				return errors.New("missing required flag: --by")
			}
			by, err := catalog.ParseFilterBy(flagBy)
			if err != nil {
				return err
			}
			s, err := app.Open(cmd)
			if err != nil {
				return err
			}
			cat, err := s.Catalog()
			if err != nil {
				return err
			}
			entries, err := cat.Filter(by, catalog.SplitValues(strings.Join(args, ",")))
			if err != nil {
				return err
			}
			if flagWhere != "" {
				if entries, err = catalog.Where(entries, flagWhere); err != nil {
					return err
				}
			}
			vk, sc := cat.DriverOverrides(entries)
			out := Output{
				KLIDDrivers:        catalog.KLIDDrivers(entries),
				VKToGlyphOverrides: vk,
				SCToVKOverrides:    sc,
				Entries:            entries,
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
	cmd.Flags().StringVar(&flagBy, "by", "", "Filter type: language|klid|driver (required)")
	cmd.Flags().StringVar(&flagWhere, "where", "", "Lua predicate over `entry` applied after the filter")
	cmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print YAML instead of JSON")
	return cmd
}
