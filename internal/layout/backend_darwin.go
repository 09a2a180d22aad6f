//go:build darwin

package layout

import "context"

type hitoolboxBackend struct{}

func (hitoolboxBackend) CurrentLayoutID(ctx context.Context) (string, error) {
	out, err := runCommand(ctx, "defaults", "read", "com.apple.HIToolbox", "AppleCurrentKeyboardLayoutInputSourceID")
	if err != nil {
		return "", queryFailure("hitoolbox", err)
	}
	return parseDefaultsValue(out), nil
}

func init() {
	Register("hitoolbox", 0, func() Querier { return hitoolboxBackend{} })
}
