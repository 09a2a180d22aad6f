package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestDefault_LookupKLID(t *testing.T) {
	c := defaultCatalog(t)
	e, ok := c.Lookup("00000409")
	require.True(t, ok)
	assert.Equal(t, "kbdus", e.Driver)
	assert.Equal(t, "en-US", e.Language)
	assert.Equal(t, "US", e.Name)

	e, ok = c.Lookup("0000040c")
	require.True(t, ok)
	assert.Equal(t, "kbdfr", e.Driver)
}

func TestDefault_LookupAlias(t *testing.T) {
	c := defaultCatalog(t)
	for _, id := range []string{"us", "com.apple.keylayout.US", "English (US)"} {
		e, ok := c.Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, "00000409", e.KLID, id)
	}
	e, ok := c.Lookup("de(nodeadkeys)")
	assert.False(t, ok)
	assert.Equal(t, Entry{}, e)
}

func TestDefault_SortedAndUnique(t *testing.T) {
	entries := defaultCatalog(t).Entries()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].KLID, entries[i].KLID)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New([]Entry{{KLID: "409", Driver: "kbdus", Language: "en-US"}})
	assert.EqualError(t, err, `catalog entry 0: invalid klid: "409" (expected 8 hex digits)`)

	_, err = New([]Entry{{KLID: "00000409", Language: "en-US"}})
	assert.EqualError(t, err, "catalog entry 0: missing driver for klid 00000409")

	_, err = New([]Entry{{KLID: "00000409", Driver: "kbdus", Language: "not a tag!"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid language for klid 00000409")
}

func TestNew_Normalizes(t *testing.T) {
	c, err := New([]Entry{{KLID: " 0001040a ", Driver: "KBDSP", Language: "es-es", Name: " Spanish Variation ", Aliases: []string{"", " es(var) "}}})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{KLID: "0001040A", Driver: "kbdsp", Language: "es-ES", Name: "Spanish Variation", Aliases: []string{"es(var)"}}}, c.Entries())
}

func TestMerge_OverridesByKLID(t *testing.T) {
	c := defaultCatalog(t)
	merged, err := c.Merge([]Entry{
		{KLID: "00000409", Driver: "kbdus", Language: "en-US", Name: "US (custom)"},
		{KLID: "0000041A", Driver: "kbdcr", Language: "hr-HR", Name: "Croatian"},
	})
	require.NoError(t, err)

	e, ok := merged.Lookup("00000409")
	require.True(t, ok)
	assert.Equal(t, "US (custom)", e.Name)
	_, ok = merged.Lookup("0000041a")
	assert.True(t, ok)
	assert.Len(t, merged.Entries(), len(c.Entries())+1)

	orig, _ := c.Lookup("00000409")
	assert.Equal(t, "US", orig.Name)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("layouts: {"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
}

func TestDefault_OverridesCoverKnownDrivers(t *testing.T) {
	c := defaultCatalog(t)
	gr := c.Overrides("KBDGR")
	assert.Equal(t, "Ö", gr.VK["192"])
	assert.Equal(t, "SS", gr.VK["219"])
	assert.Equal(t, 89, gr.SC["2c"])

	dv := c.Overrides("kbddv")
	assert.Empty(t, dv.VK)
	assert.Equal(t, 80, dv.SC["13"])

	us := c.Overrides("kbdus")
	assert.NotNil(t, us.VK)
	assert.Empty(t, us.VK)
	assert.Empty(t, us.SC)

	// Callers get copies.
	gr.VK["192"] = "x"
	assert.Equal(t, "Ö", c.Overrides("kbdgr").VK["192"])
}

func TestParse_Overrides(t *testing.T) {
	doc := `
layouts:
  - {klid: "0000041A", driver: kbdcr, language: hr-HR, name: Croatian}
drivers:
  KBDCR:
    vk: {"0219": "Š"}
    sc: {"0x15": 90, "2C": 89}
`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	o := c.Overrides("kbdcr")
	assert.Equal(t, map[string]string{"219": "Š"}, o.VK)
	assert.Equal(t, map[string]int{"15": 90, "2c": 89}, o.SC)

	merged, err := c.Merge([]Entry{{KLID: "00000409", Driver: "kbdus", Language: "en-US"}})
	require.NoError(t, err)
	assert.Equal(t, o, merged.Overrides("kbdcr"))
}

func TestParse_InvalidOverrides(t *testing.T) {
	base := "layouts:\n  - {klid: \"0000041A\", driver: kbdcr, language: hr-HR}\n"
	cases := map[string]string{
		"drivers:\n  kbdxx: {vk: {\"65\": A}}\n":  `overrides for unknown driver "kbdxx"`,
		"drivers:\n  kbdcr: {vk: {\"300\": A}}\n": `overrides for kbdcr: invalid virtual-key code: "300"`,
		"drivers:\n  kbdcr: {vk: {\"65\": \"\"}}\n": "overrides for kbdcr: empty glyph for virtual-key code 65",
		"drivers:\n  kbdcr: {sc: {zz: 65}}\n":     `overrides for kbdcr: invalid scan code: "zz"`,
		"drivers:\n  kbdcr: {sc: {\"10\": 0}}\n":   "overrides for kbdcr: invalid virtual-key code 0 for scan code 10",
	}
	for doc, want := range cases {
		_, err := Parse([]byte(base + doc))
		assert.EqualError(t, err, want, doc)
	}
}
