package main

import (
	"fmt"
	"os"

	"github.com/MatthiasKunnen/mimetype/basedir"
	"gopkg.in/yaml.v3"
)

const configSuffix = "mimetype/config.yaml"

// Config represents the config file ($XDG_CONFIG_HOME/mimetype/config.yaml).
// Flags that are set explicitly take precedence over the config file.
type Config struct {
	// Files are the mime.types files to load, in order.
	Files    []string `yaml:"files"`
	LogLevel string   `yaml:"log_level"`
	Output   string   `yaml:"output"`

	// Address is the listen address of the serve command.
	Address string `yaml:"address"`
}

// configPath returns explicit if set, otherwise the first config file found in the XDG config
// directories. An empty path means there is no config file.
func configPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	return basedir.FindConfigFile(configSuffix)
}

// loadConfig reads the config file at path. An empty path results in a zero Config.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
