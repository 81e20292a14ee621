// Package config loads the configuration file of crush.
//
// The configuration file is a YAML document. Its path is given by the -config
// flag, or the CRUSH_CONFIG environment variable, and defaults to
// ~/.config/crush/rc.yaml. A missing file is not an error; the defaults are
// used instead.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"src.crush.sh/pkg/env"
	"src.crush.sh/pkg/fsutil"
)

// Config is the configuration of crush.
type Config struct {
	// Directories searched for external commands, in order.
	SearchPath []string `yaml:"search_path"`
	// Path of the job history database. Empty disables the history.
	History string `yaml:"history"`
	// Path of the debug log. Empty discards the log.
	Log string `yaml:"log"`
}

// Default returns the default configuration. The search path is taken from
// $PATH.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		SearchPath: fsutil.SearchPaths(),
		History:    filepath.Join(home, ".local", "state", "crush", "db"),
	}
}

// DefaultPath returns the path of the configuration file used when none is
// given explicitly.
func DefaultPath() string {
	if path := os.Getenv(env.CRUSH_CONFIG); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "crush", "rc.yaml")
}

// Load loads the configuration file at path on top of the defaults. Keys that
// are not set in the file keep their default values; unknown keys are an
// error. Environment variables in paths are expanded.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.expandVariables()
	return cfg, nil
}

func (c *Config) expandVariables() {
	for i, dir := range c.SearchPath {
		c.SearchPath[i] = os.ExpandEnv(dir)
	}
	c.History = os.ExpandEnv(c.History)
	c.Log = os.ExpandEnv(c.Log)
}
