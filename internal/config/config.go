// Package config loads the board's TOML configuration.
package config

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default/config.toml
var configFS embed.FS

var ErrInvalidWindow = errors.New("window width and height must be positive")

type Config struct {
	Window WindowConfig `toml:"window"`
	Media  MediaConfig  `toml:"media"`
	Export ExportConfig `toml:"export"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type MediaConfig struct {
	Dir string `toml:"dir"`
}

type ExportConfig struct {
	Title string `toml:"title"`
}

// Default returns the embedded configuration.
func Default() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		panic(fmt.Sprintf("config: no embedded default config: %v", err))
	}
	c := &Config{}
	if err := c.Load(string(data)); err != nil {
		panic(fmt.Sprintf("config: bad embedded default config: %v", err))
	}
	return c
}

// Load overlays the TOML document in data onto c. Keys missing from data
// keep their current value.
func (c *Config) Load(data string) error {
	if _, err := toml.Decode(data, c); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	return nil
}

// MapPath resolves a map asset file name against the media directory.
func (c *Config) MapPath(file string) string {
	if file == "" {
		return ""
	}
	return filepath.Join(c.Media.Dir, file)
}

// DefaultPath is where the user config lives when no path is given.
func DefaultPath() string {
	if dir := os.Getenv("TACBOARD_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config.toml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tacboard", "config.toml")
}

// LoadFile returns the defaults overlaid with the file at path. An empty
// path means DefaultPath, which is allowed to be missing; an explicit path
// must exist.
func LoadFile(path string) (*Config, error) {
	c := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return c, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return c, nil
}
