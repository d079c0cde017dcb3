// Package config loads the hnefatafl YAML configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/davidknaack/hnefatafl/internal/board"
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the file format. Every field has a default, so an empty file or
// no file at all is a valid configuration.
type Config struct {
	Log logx.LogConf
	// Layout replaces the classic starting position when set.
	Layout []string `json:",optional"`
	Color  bool     `json:",default=true"`
}

// Default returns the configuration used when no file is found.
func Default() (Config, error) {
	var c Config
	if err := conf.FillDefault(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the file at path. An empty path means the first file found on
// SearchPaths, falling back to Default.
func Load(path string) (Config, error) {
	if path == "" {
		path = Find()
	}
	if path == "" {
		return Default()
	}

	var c Config
	if err := conf.Load(path, &c); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Parse reads a configuration from YAML text.
func Parse(yaml []byte) (Config, error) {
	var c Config
	if err := conf.LoadFromYamlBytes(yaml, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the custom layout, if any.
func (c Config) Validate() error {
	if len(c.Layout) == 0 {
		return nil
	}
	if _, err := board.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("%w: layout: %w", ErrInvalid, err)
	}
	return nil
}
