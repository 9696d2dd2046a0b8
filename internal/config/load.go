package config

import (
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file. Relative
// output and store paths are resolved against the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	base := BaseDir(path)
	cfg.Output.Report = resolvePath(base, cfg.Output.Report)
	cfg.Output.HTML = resolvePath(base, cfg.Output.HTML)
	cfg.Store.Path = resolvePath(base, cfg.Store.Path)
	return cfg, nil
}
