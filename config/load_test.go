package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"amplc/common"
	"amplc/report"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *Config
	}{
		{"empty", "", Default()},
		{"empty table", "[compiler]\n", Default()},
		{
			"all settings",
			`[compiler]
loglevel = "verbose"
trace = true
dump-symbols = true
load-factor = 0.5
`,
			&Config{LogLevel: report.LogLevelVerbose, Trace: true, DumpSymbols: true, LoadFactor: 0.5},
		},
		{
			"partial",
			"[compiler]\nloglevel = \"silent\"\n",
			&Config{LogLevel: report.LogLevelSilent, LoadFactor: common.DefaultLoadFactor},
		},
		{
			"unknown keys",
			"[compiler]\nzeta = 1\ntrace = true\nalpha = \"x\"\n",
			&Config{LogLevel: report.LogLevelError, Trace: true, LoadFactor: common.DefaultLoadFactor, UnknownKeys: []string{"alpha", "zeta"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			conf, err := parseConfig([]byte(test.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(conf, test.want) {
				t.Errorf("got %+v, want %+v", conf, test.want)
			}
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed", "[compiler\n"},
		{"unknown log level", "[compiler]\nloglevel = \"loud\"\n"},
		{"zero load factor", "[compiler]\nload-factor = 0.0\n"},
		{"negative load factor", "[compiler]\nload-factor = -0.5\n"},
		{"wrong type", "[compiler]\ntrace = \"yes\"\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := parseConfig([]byte(test.src)); err == nil {
				t.Error("no error")
			}
		})
	}
}

func TestLocateAndLoad(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "prog"+common.SrcFileExtension)

	if _, ok := Locate(srcPath); ok {
		t.Fatal("located a config file in an empty directory")
	}

	confPath := filepath.Join(dir, common.ConfigFileName)
	if err := os.WriteFile(confPath, []byte("[compiler]\ntrace = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	path, ok := Locate(srcPath)
	if !ok || path != confPath {
		t.Fatalf("Locate() = %q, %v; want %q, true", path, ok, confPath)
	}

	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !conf.Trace {
		t.Error("trace setting not loaded")
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("loading a missing config file succeeded")
	}
}
