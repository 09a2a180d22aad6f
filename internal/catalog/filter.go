package catalog

import (
	"fmt"
	"strings"
)

// FilterBy names the entry attribute a filter matches on.
type FilterBy string

const (
	ByLanguage FilterBy = "language"
	ByKLID     FilterBy = "klid"
	ByDriver   FilterBy = "driver"
)

// ParseFilterBy accepts language, klid or driver.
func ParseFilterBy(s string) (FilterBy, error) {
	switch by := FilterBy(strings.TrimSpace(s)); by {
	case ByLanguage, ByKLID, ByDriver:
		return by, nil
	default:
		return "", fmt.Errorf("invalid filter type: %q (expected language, klid or driver)", s)
	}
}

// SplitValues splits a comma-separated filter list, lower-cased, without
// empty items.
func SplitValues(s string) []string {
	var out []string
	for _, v := range strings.Split(strings.TrimSpace(s), ",") {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Filter selects layout drivers and returns every entry of the selected
// drivers, in KLID order. A driver is selected when its name, one of its
// KLIDs, or one of its languages matches any of values, depending on by.
// Languages match by case-insensitive prefix, so "en" selects every driver
// used by an English layout.
func (c *Catalog) Filter(by FilterBy, values []string) ([]Entry, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("missing filter values: expected a comma-separated list")
	}
	byDriver := map[string][]Entry{}
	for _, e := range c.entries {
		byDriver[e.Driver] = append(byDriver[e.Driver], e)
	}
	selected := map[string]bool{}
	for driver, entries := range byDriver {
		selected[driver] = driverMatches(driver, entries, by, values)
	}
	out := []Entry{}
	for _, e := range c.entries {
		if selected[e.Driver] {
			out = append(out, e)
		}
	}
	return out, nil
}

func driverMatches(driver string, entries []Entry, by FilterBy, values []string) bool {
	for _, v := range values {
		switch by {
		case ByDriver:
			if driver == v {
				return true
			}
		case ByKLID:
			for _, e := range entries {
				if strings.EqualFold(e.KLID, v) {
					return true
				}
			}
		case ByLanguage:
			for _, e := range entries {
				if strings.HasPrefix(strings.ToLower(e.Language), v) {
					return true
				}
			}
		}
	}
	return false
}

// KLIDDrivers maps each entry's KLID to its layout driver.
func KLIDDrivers(entries []Entry) map[string]string {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.KLID] = e.Driver
	}
	return out
}

// DriverOverrides collects the override tables of the drivers used by
// entries, keyed by driver.
func (c *Catalog) DriverOverrides(entries []Entry) (vk map[string]map[string]string, sc map[string]map[string]int) {
	vk = map[string]map[string]string{}
	sc = map[string]map[string]int{}
	for _, e := range entries {
		if _, done := vk[e.Driver]; done {
			continue
		}
		o := c.Overrides(e.Driver)
		vk[e.Driver] = o.VK
		sc[e.Driver] = o.SC
	}
	return vk, sc
}
