package config

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/flarebyte/kbdlayout/internal/catalog"
)

// Config is the optional kbdlayout configuration. The zero value after
// Default() reproduces the behavior without a config file.
//
//	configVersion: "1"
//	backends: ["hyprland", "x11"]
//	strictExit: true
//	catalog: [{klid: "0000041A", driver: "kbdcr", language: "hr-HR", name: "Croatian"}]
type Config struct {
	ConfigVersion string
	// Backends overrides the platform's default backend order.
	Backends []string
	// StrictExit makes a failed query exit with status 1.
	StrictExit bool
	// Catalog entries are merged over the embedded catalog by KLID.
	Catalog []catalog.Entry
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{ConfigVersion: CurrentConfigVersion}
}

// Load reads and validates a .cue config file. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	return decode(v)
}

// Parse validates config source held in memory.
func Parse(data []byte) (Config, error) {
	v, err := compileBytes(data)
	if err != nil {
		return Config{}, err
	}
	return decode(v)
}

func decode(v cue.Value) (Config, error) {
	var c Config
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if err := checkConfigVersion(c.ConfigVersion); err != nil {
		return Config{}, err
	}

	bv, ok, err := optionalField(v, "backends", cue.ListKind, "list")
	if err != nil {
		return Config{}, err
	}
	if ok {
		if err := bv.Decode(&c.Backends); err != nil {
			return Config{}, fmt.Errorf("invalid value for backends: %v", err)
		}
		for i, name := range c.Backends {
			if name == "" {
				return Config{}, fmt.Errorf("invalid value for backends[%d]: empty name", i)
			}
		}
	}

	sv, ok, err := optionalField(v, "strictExit", cue.BoolKind, "bool")
	if err != nil {
		return Config{}, err
	}
	if ok {
		if err := sv.Decode(&c.StrictExit); err != nil {
			return Config{}, fmt.Errorf("invalid value for strictExit: %v", err)
		}
	}

	cv, ok, err := optionalField(v, "catalog", cue.ListKind, "list")
	if err != nil {
		return Config{}, err
	}
	if ok {
		entries, err := decodeCatalog(cv)
		if err != nil {
			return Config{}, err
		}
		c.Catalog = entries
	}
	return c, nil
}

func decodeCatalog(v cue.Value) ([]catalog.Entry, error) {
	it, err := v.List()
	if err != nil {
		return nil, fmt.Errorf("invalid value for catalog: %v", err)
	}
	var out []catalog.Entry
	for i := 0; it.Next(); i++ {
		ev := it.Value()
		for _, name := range []string{"klid", "driver", "language"} {
			if err := requireStringField(ev, name); err != nil {
				return nil, fmt.Errorf("catalog[%d]: %v", i, err)
			}
		}
		var e catalog.Entry
		if err := ev.Decode(&e); err != nil {
			return nil, fmt.Errorf("catalog[%d]: invalid entry: %v", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
