package layout

import "strings"

// rulesNames is the decoded _XKB_RULES_NAMES root property: five
// NUL-separated strings.
type rulesNames struct {
	Rules   string
	Model   string
	Layout  string
	Variant string
	Options string
}

func parseRulesNames(b []byte) rulesNames {
	fields := strings.Split(string(b), "\x00")
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	return rulesNames{
		Rules:   get(0),
		Model:   get(1),
		Layout:  get(2),
		Variant: get(3),
		Options: get(4),
	}
}

// layoutID returns the first configured group in xkb notation, e.g. "us"
// or "de(nodeadkeys)".
func (r rulesNames) layoutID() (string, bool) {
	first := strings.TrimSpace(strings.Split(r.Layout, ",")[0])
	if first == "" {
		return "", false
	}
	if v := strings.TrimSpace(strings.Split(r.Variant, ",")[0]); v != "" {
		return first + "(" + v + ")", true
	}
	return first, true
}
