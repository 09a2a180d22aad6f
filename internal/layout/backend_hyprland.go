//go:build linux

package layout

import "context"

type hyprlandBackend struct{}

func (hyprlandBackend) CurrentLayoutID(ctx context.Context) (string, error) {
	out, err := runCommand(ctx, "hyprctl", "devices", "-j")
	if err != nil {
		return "", queryFailure("hyprland", err)
	}
	id, err := parseHyprctlDevices(out)
	if err != nil {
		return "", queryFailure("hyprland", err)
	}
	return id, nil
}

func init() {
	Register("hyprland", 10, func() Querier { return hyprlandBackend{} })
}
