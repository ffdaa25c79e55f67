package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"amplc/common"
	"amplc/report"

	"github.com/pelletier/go-toml"
)

// tomlConfigFile represents the config file as it is encoded in TOML
type tomlConfigFile struct {
	Compiler *tomlCompiler `toml:"compiler"`
}

// tomlCompiler represents the compiler settings as they are encoded in TOML.
// Settings that are absent from the file are left nil.
type tomlCompiler struct {
	LogLevel    *string  `toml:"loglevel"`
	Trace       *bool    `toml:"trace"`
	DumpSymbols *bool    `toml:"dump-symbols"`
	LoadFactor  *float64 `toml:"load-factor"`
}

// knownKeys is the set of keys accepted in the `compiler` table.
var knownKeys = map[string]struct{}{
	"loglevel":     {},
	"trace":        {},
	"dump-symbols": {},
	"load-factor":  {},
}

// Config holds the settings of a compilation.
type Config struct {
	// LogLevel is the reporter log level.  It must be one of the enumerated
	// log levels of the report package.
	LogLevel int

	// Trace enables the parse trace.
	Trace bool

	// DumpSymbols enables the symbol table listing.
	DumpSymbols bool

	// LoadFactor is the maximum load factor of the scope tables.
	LoadFactor float64

	// UnknownKeys lists the keys of the config file that were ignored.
	UnknownKeys []string
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	return &Config{
		LogLevel:   report.LogLevelError,
		LoadFactor: common.DefaultLoadFactor,
	}
}

// Locate returns the path of the config file sitting next to the source file
// at srcPath and whether such a file exists.
func Locate(srcPath string) (string, bool) {
	path := filepath.Join(filepath.Dir(srcPath), common.ConfigFileName)

	finfo, err := os.Stat(path)
	if err != nil || finfo.IsDir() {
		return "", false
	}

	return path, true
}

// LoadConfig loads and validates the config file at path.  Settings the file
// does not mention keep their default value.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config file '%s' could not be opened: %w", path, err)
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	conf, err := parseConfig(buff)
	if err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}

	return conf, nil
}

// parseConfig decodes and validates the contents of a config file.
func parseConfig(buff []byte) (*Config, error) {
	tree, err := toml.LoadBytes(buff)
	if err != nil {
		return nil, err
	}

	tcf := &tomlConfigFile{}
	if err := tree.Unmarshal(tcf); err != nil {
		return nil, err
	}

	conf := Default()
	if subtree, ok := tree.Get("compiler").(*toml.Tree); ok {
		for _, key := range subtree.Keys() {
			if _, ok := knownKeys[key]; !ok {
				conf.UnknownKeys = append(conf.UnknownKeys, key)
			}
		}

		sort.Strings(conf.UnknownKeys)
	} else if tree.Has("compiler") {
		return nil, errors.New("`compiler` must be a table")
	}

	if tcf.Compiler == nil {
		return conf, nil
	}

	tc := tcf.Compiler
	if tc.LogLevel != nil {
		if conf.LogLevel, err = report.ParseLogLevel(*tc.LogLevel); err != nil {
			return nil, err
		}
	}

	if tc.Trace != nil {
		conf.Trace = *tc.Trace
	}

	if tc.DumpSymbols != nil {
		conf.DumpSymbols = *tc.DumpSymbols
	}

	if tc.LoadFactor != nil {
		if *tc.LoadFactor <= 0 {
			return nil, fmt.Errorf("load factor must be positive, not %v", *tc.LoadFactor)
		}

		conf.LoadFactor = *tc.LoadFactor
	}

	return conf, nil
}
