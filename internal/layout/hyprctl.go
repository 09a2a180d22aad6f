package layout

import (
	"encoding/json"
	"errors"
	"fmt"
)

type hyprKeyboard struct {
	Name         string `json:"name"`
	Layout       string `json:"layout"`
	Variant      string `json:"variant"`
	ActiveKeymap string `json:"active_keymap"`
	Main         bool   `json:"main"`
}

type hyprDevices struct {
	Keyboards []hyprKeyboard `json:"keyboards"`
}

// parseHyprctlDevices picks the active keymap of the main keyboard, or of
// the first keyboard when none is flagged main.
func parseHyprctlDevices(b []byte) (string, error) {
	var d hyprDevices
	if err := json.Unmarshal(b, &d); err != nil {
		return "", fmt.Errorf("invalid hyprctl output: %v", err)
	}
	if len(d.Keyboards) == 0 {
		return "", errors.New("hyprctl reports no keyboards")
	}
	for _, k := range d.Keyboards {
		if k.Main {
			return k.ActiveKeymap, nil
		}
	}
	return d.Keyboards[0].ActiveKeymap, nil
}
