package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WikiConfig is the wiki section of the config file.
type WikiConfig struct {
	APIURL    string `yaml:"api_url"`
	UserAgent string `yaml:"user_agent"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
}

// RunConfig is the run section of the config file. Bounds are pointers so
// that an explicit 0 can be told apart from an absent key.
type RunConfig struct {
	LowerBound *int   `yaml:"lower_bound"`
	UpperBound *int   `yaml:"upper_bound"`
	LogPage    string `yaml:"log_page"`
	Mode       string `yaml:"mode"`
	Pause      string `yaml:"pause"`
}

// FileConfig represents the structure of ~/.chinadisambig/config.yaml.
type FileConfig struct {
	Wiki WikiConfig `yaml:"wiki"`
	Run  RunConfig  `yaml:"run"`
}

// DefaultConfigPath returns ~/.chinadisambig/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".chinadisambig", "config.yaml"), nil
}

// LoadConfigFile loads configuration from path, or from the default path when
// path is empty. Returns nil if the file doesn't exist (not an error).
// Returns error if the file exists but cannot be parsed.
func LoadConfigFile(path string) (*FileConfig, error) {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
