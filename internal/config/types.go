package config

import "github.com/ChenyuHeee/AIOPS/internal/textmatch"

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the parsed .rcajudge.yml file.
type Config struct {
	Version int           `yaml:"version"`
	Scoring ScoringConfig `yaml:"scoring"`
	Output  OutputConfig  `yaml:"output"`
	Store   StoreConfig   `yaml:"store"`
}

// ScoringConfig tunes the scorer.
type ScoringConfig struct {
	ReasonThreshold *float64 `yaml:"reason_threshold"`
}

// OutputConfig selects report destinations and console rendering.
type OutputConfig struct {
	Report  string `yaml:"report"`
	HTML    string `yaml:"html"`
	Details bool   `yaml:"details"`
	Color   string `yaml:"color"`
}

// StoreConfig points at the run history database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Threshold returns the configured reason threshold or the default.
func (c Config) Threshold() float64 {
	if c.Scoring.ReasonThreshold == nil {
		return textmatch.DefaultReasonThreshold
	}
	return *c.Scoring.ReasonThreshold
}
