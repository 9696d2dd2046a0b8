package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ChenyuHeee/AIOPS/internal/config"
)

// findConfigPath is a test seam for locating .rcajudge.yml.
var findConfigPath = config.FindConfigPath

// loadConfig loads an explicit config path, or searches upward from the
// working directory. A missing searched config yields the defaults and an
// empty path.
func loadConfig(configPath string) (config.Config, string, error) {
	if strings.TrimSpace(configPath) != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return config.Config{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := config.Load(abs)
		if err != nil {
			return config.Config{}, "", err
		}
		return cfg, abs, nil
	}
	found, err := findConfigPath("")
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), "", nil
	}
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(found)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, found, nil
}
