package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	MinZoom        float64 `toml:"min_zoom"`
	MaxZoom        float64 `toml:"max_zoom"`
	StartZoom      float64 `toml:"start_zoom"`
	GridSize       float64 `toml:"grid_size"`
	GridMajorEvery int     `toml:"grid_major_every"`
	NodeWidth      float64 `toml:"node_width"`
	NodeHeight     float64 `toml:"node_height"`
	PortRadius     float64 `toml:"port_radius"`
	PortHitRadius  float64 `toml:"port_hit_radius"`
	ExportDir      string  `toml:"export_dir"`
}

func defaultConfig() *Config {
	return &Config{
		MinZoom:        0.25,
		MaxZoom:        4.0,
		StartZoom:      1.0,
		GridSize:       20,
		GridMajorEvery: 5,
		NodeWidth:      150,
		NodeHeight:     100,
		PortRadius:     6,
		PortHitRadius:  15,
	}
}

// loadConfig reads the TOML config at path, or ~/.patchbay.toml when
// path is empty. A missing file yields the defaults; a present but
// invalid file is an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(homeDir, ".patchbay.toml")
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MinZoom <= 0 || c.MaxZoom <= 0 {
		return fmt.Errorf("zoom bounds must be positive")
	}
	if c.MinZoom >= c.MaxZoom {
		return fmt.Errorf("min_zoom %v must be below max_zoom %v", c.MinZoom, c.MaxZoom)
	}
	if c.GridSize <= 0 {
		return fmt.Errorf("grid_size must be positive")
	}
	if c.GridMajorEvery < 1 {
		return fmt.Errorf("grid_major_every must be at least 1")
	}
	if c.NodeWidth <= 0 || c.NodeHeight <= 0 {
		return fmt.Errorf("node dimensions must be positive")
	}
	if c.StartZoom < c.MinZoom {
		c.StartZoom = c.MinZoom
	}
	if c.StartZoom > c.MaxZoom {
		c.StartZoom = c.MaxZoom
	}
	return nil
}

// exportPath resolves filename against the configured export
// directory, creating it on first use.
func (c *Config) exportPath(filename string) string {
	if c.ExportDir == "" {
		return filename
	}
	dir := c.ExportDir
	if homeDir, err := os.UserHomeDir(); err == nil && len(dir) > 0 && dir[0] == '~' {
		dir = filepath.Join(homeDir, dir[1:])
	}
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, filename)
}
