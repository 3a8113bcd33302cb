package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/clarete/parsec"
)

// Config holds the settings loaded from .parsec.toml, mirroring the
// runner's Options one field at a time.
type Config struct {
	TabSize       int    `toml:"tab_size"`
	SourceName    string `toml:"source_name"`
	InitialLine   int    `toml:"initial_line"`
	InitialColumn int    `toml:"initial_column"`
}

// LoadConfig reads path if it exists, returning a zero-valued Config
// (i.e. all built-in defaults) when it does not.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// ToOptions builds a parsec.Options from cfg; a non-empty sourceName
// (the input file's name) replaces the configured source name, and the
// other fields are taken from cfg unchanged.
func (cfg Config) ToOptions(sourceName string) parsec.Options {
	name := cfg.SourceName
	if sourceName != "" {
		name = sourceName
	}
	return parsec.Options{
		SourceName:    name,
		InitialLine:   cfg.InitialLine,
		InitialColumn: cfg.InitialColumn,
		TabSize:       cfg.TabSize,
	}
}
