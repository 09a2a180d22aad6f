package layout

import "strings"

// parseDefaultsValue strips the line ending `defaults read` appends.
func parseDefaultsValue(b []byte) string {
	return strings.TrimRight(string(b), "\r\n")
}
