package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds user defaults loaded from the optional config file.
// Command-line flags override these values.
type config struct {
	Shape  string `toml:"shape"`  // default node shape for convert: "map" or "list"
	Listen string `toml:"listen"` // default listen address for serve
}

func defaultConfig() config {
	return config{Shape: "map", Listen: ":8080"}
}

// configPath returns the config file location, honoring XDG_CONFIG_HOME.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// loadConfig reads the config file if present. A missing file yields
// defaults; a malformed file is an error.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		// No resolvable config dir means no config file, which is fine.
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
