// Package catalog describes Windows keyboard layout identifiers (KLIDs):
// their layout driver, language, display name, the names other platforms
// use for the same layout, and how each driver's keys differ from kbdus.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed layouts.yaml
var embedded []byte

// Entry is one keyboard layout.
type Entry struct {
	KLID     string   `yaml:"klid" json:"klid"`
	Driver   string   `yaml:"driver" json:"driver"`
	Language string   `yaml:"language" json:"language"`
	Name     string   `yaml:"name" json:"name"`
	Aliases  []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Overrides are the key mappings of one layout driver that differ from
// kbdus. VK maps a virtual-key code (decimal) to the upper-cased glyph its
// unshifted key types; SC maps a scan code (hex) to its virtual-key code.
type Overrides struct {
	VK map[string]string `yaml:"vk" json:"vk"`
	SC map[string]int    `yaml:"sc" json:"sc"`
}

// Catalog is an immutable KLID table sorted by KLID, with override tables
// by driver.
type Catalog struct {
	entries []Entry
	drivers map[string]Overrides
}

type document struct {
	Layouts []Entry              `yaml:"layouts"`
	Drivers map[string]Overrides `yaml:"drivers"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Parse reads a YAML document with a top-level `layouts` list and an
// optional `drivers` map of override tables.
func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %v", err)
	}
	c, err := New(doc.Layouts)
	if err != nil {
		return nil, err
	}
	return c.withDrivers(doc.Drivers)
}

// New validates and normalizes entries. A later entry replaces an earlier
// one with the same KLID.
func New(entries []Entry) (*Catalog, error) {
	byKLID := map[string]Entry{}
	for i, e := range entries {
		n, err := normalize(e)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		byKLID[n.KLID] = n
	}
	c := &Catalog{entries: make([]Entry, 0, len(byKLID)), drivers: map[string]Overrides{}}
	for _, e := range byKLID {
		c.entries = append(c.entries, e)
	}
	sort.Slice(c.entries, func(i, j int) bool { return c.entries[i].KLID < c.entries[j].KLID })
	return c, nil
}

// Merge returns a catalog where extra entries override c by KLID. Override
// tables are kept.
func (c *Catalog) Merge(extra []Entry) (*Catalog, error) {
	all := make([]Entry, 0, len(c.entries)+len(extra))
	all = append(all, c.entries...)
	all = append(all, extra...)
	m, err := New(all)
	if err != nil {
		return nil, err
	}
	m.drivers = c.drivers
	return m, nil
}

func (c *Catalog) withDrivers(drivers map[string]Overrides) (*Catalog, error) {
	known := map[string]bool{}
	for _, e := range c.entries {
		known[e.Driver] = true
	}
	for name, o := range drivers {
		driver := strings.ToLower(strings.TrimSpace(name))
		if !known[driver] {
			return nil, fmt.Errorf("overrides for unknown driver %q", name)
		}
		n, err := normalizeOverrides(o)
		if err != nil {
			return nil, fmt.Errorf("overrides for %s: %w", driver, err)
		}
		c.drivers[driver] = n
	}
	return c, nil
}

// Overrides returns the override tables of driver. A driver without tables
// types like kbdus and gets empty maps.
func (c *Catalog) Overrides(driver string) Overrides {
	o := c.drivers[strings.ToLower(driver)]
	out := Overrides{VK: make(map[string]string, len(o.VK)), SC: make(map[string]int, len(o.SC))}
	for k, v := range o.VK {
		out.VK[k] = v
	}
	for k, v := range o.SC {
		out.SC[k] = v
	}
	return out
}

// Entries returns a copy of every entry.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an entry by KLID, then by alias. Both comparisons ignore case.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Entry{}, false
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.KLID, id) {
			return e, true
		}
	}
	for _, e := range c.entries {
		for _, a := range e.Aliases {
			if strings.EqualFold(a, id) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

func normalize(e Entry) (Entry, error) {
	klid := strings.ToUpper(strings.TrimSpace(e.KLID))
	if !isKLID(klid) {
		return Entry{}, fmt.Errorf("invalid klid: %q (expected 8 hex digits)", e.KLID)
	}
	driver := strings.ToLower(strings.TrimSpace(e.Driver))
	if driver == "" {
		return Entry{}, fmt.Errorf("missing driver for klid %s", klid)
	}
	tag, err := language.Parse(strings.TrimSpace(e.Language))
	if err != nil {
		return Entry{}, fmt.Errorf("invalid language for klid %s: %v", klid, err)
	}
	out := Entry{
		KLID:     klid,
		Driver:   driver,
		Language: tag.String(),
		Name:     strings.TrimSpace(e.Name),
	}
	for _, a := range e.Aliases {
		if a = strings.TrimSpace(a); a != "" {
			out.Aliases = append(out.Aliases, a)
		}
	}
	return out, nil
}

func normalizeOverrides(o Overrides) (Overrides, error) {
	out := Overrides{VK: map[string]string{}, SC: map[string]int{}}
	for k, glyph := range o.VK {
		vk, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || !isVirtualKey(vk) {
			return Overrides{}, fmt.Errorf("invalid virtual-key code: %q", k)
		}
		if glyph == "" {
			return Overrides{}, fmt.Errorf("empty glyph for virtual-key code %d", vk)
		}
		out.VK[strconv.Itoa(vk)] = glyph
	}
	for k, vk := range o.SC {
		hex := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(k)), "0x")
		sc, err := strconv.ParseUint(hex, 16, 16)
		if err != nil || sc == 0 {
			return Overrides{}, fmt.Errorf("invalid scan code: %q", k)
		}
		if !isVirtualKey(vk) {
			return Overrides{}, fmt.Errorf("invalid virtual-key code %d for scan code %s", vk, k)
		}
		out.SC[fmt.Sprintf("%02x", sc)] = vk
	}
	return out, nil
}

func isVirtualKey(vk int) bool {
	return vk > 0 && vk < 255
}

func isKLID(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'F') {
			return false
		}
	}
	return true
}
