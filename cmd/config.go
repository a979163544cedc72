package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional CLI configuration, read from ~/.pseudo.toml or the
// --config path.
type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

func defaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(home, ".pseudo_history"),
		Color:       true,
	}
}

// loadConfig overlays the file at path onto the defaults. A missing default
// config file is not an error; a missing --config path is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".pseudo.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
