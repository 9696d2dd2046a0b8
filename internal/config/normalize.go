package config

import "strings"

// Normalize trims string fields and fills defaults.
func Normalize(cfg *Config) {
	cfg.Output.Report = strings.TrimSpace(cfg.Output.Report)
	cfg.Output.HTML = strings.TrimSpace(cfg.Output.HTML)
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	if cfg.Output.Color == "" {
		cfg.Output.Color = ColorAuto
	}
	cfg.Store.Path = strings.TrimSpace(cfg.Store.Path)
}
