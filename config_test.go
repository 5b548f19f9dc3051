package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		err     string // substring of the expected error, "" for none
	}{
		{name: "empty", content: "", want: Config{}},
		{name: "full", content: "prompt = \"* \"\ndebug = true\nsilent = true\n", want: Config{Prompt: "* ", Debug: true, Silent: true}},
		{name: "partial", content: "silent = true\n", want: Config{Silent: true}},
		{name: "comments", content: "# led settings\nprompt = \":\" # colon\n", want: Config{Prompt: ":"}},
		{name: "unknown key", content: "verbose = true\n", err: "unknown key"},
		{name: "wrong type", content: "debug = \"yes\"\n", err: "parse error"},
		{name: "syntax", content: "prompt = \n", err: "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := loadConfig(path, true)
			if tt.err != "" {
				if err == nil || !strings.Contains(err.Error(), tt.err) {
					t.Fatalf("want error containing %q, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg != tt.want {
				t.Fatalf("want %+v, got %+v", tt.want, cfg)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.toml")} {
		cfg, err := loadConfig(path, false)
		if err != nil {
			t.Fatalf("%q: %v", path, err)
		}
		if cfg != (Config{}) {
			t.Fatalf("%q: want zero config, got %+v", path, cfg)
		}
	}
}

func TestLoadConfigRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	if _, err := loadConfig(path, true); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want %v, got %v", os.ErrNotExist, err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("LED_CONFIG", "/etc/led.toml")
	if got := defaultConfigPath(); got != "/etc/led.toml" {
		t.Fatalf("want $LED_CONFIG, got %q", got)
	}
}
