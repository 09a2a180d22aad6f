package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/flarebyte/kbdlayout/internal/catalog"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoad_Full(t *testing.T) {
	cfg := writeConfig(t, "kbdlayout.cue", `{
  configVersion: "1"
  backends: ["hyprland", "x11"]
  strictExit: true
  catalog: [
    {klid: "0000041A", driver: "kbdcr", language: "hr-HR", name: "Croatian", aliases: ["hr"]},
  ]
}
`)
	c, err := Load(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		ConfigVersion: "1",
		Backends:      []string{"hyprland", "x11"},
		StrictExit:    true,
		Catalog: []catalog.Entry{
			{KLID: "0000041A", Driver: "kbdcr", Language: "hr-HR", Name: "Croatian", Aliases: []string{"hr"}},
		},
	}
	if !reflect.DeepEqual(c, want) {
		t.Fatalf("unexpected config\nwant: %+v\n got: %+v", want, c)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"missing version", `{strictExit: true}`, "missing required field: configVersion"},
		{"version type", `{configVersion: 1}`, "invalid type for field: configVersion (expected string)"},
		{"backends type", `{configVersion: "1", backends: "x11"}`, "invalid type for field: backends (expected list)"},
		{"empty backend", `{configVersion: "1", backends: [""]}`, "invalid value for backends[0]: empty name"},
		{"strict type", `{configVersion: "1", strictExit: "yes"}`, "invalid type for field: strictExit (expected bool)"},
		{"catalog entry", `{configVersion: "1", catalog: [{klid: "0000041A", language: "hr-HR"}]}`, "catalog[0]: missing required field: driver"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Error() != tc.want {
				t.Fatalf("unexpected error\nwant: %s\n got: %s", tc.want, err.Error())
			}
		})
	}
}

func TestParse_InvalidSyntax(t *testing.T) {
	_, err := Parse([]byte(`{configVersion: `))
	if err == nil || !strings.HasPrefix(err.Error(), "invalid config:") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_WrongExtension(t *testing.T) {
	cfg := writeConfig(t, "kbdlayout.yaml", "configVersion: \"1\"\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "unsupported config format: expected .cue" {
		t.Fatalf("unexpected error: %v", err)
	}
}
