package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultYear is used when neither the config file nor the environment set one.
const DefaultYear = 2023

type Config struct {
	DefaultYear int    `yaml:"default_year"`
	InputRoot   string `yaml:"input_root"`
	LogLevel    string `yaml:"log_level"`
}

func defaults() Config {
	return Config{DefaultYear: DefaultYear, InputRoot: ".", LogLevel: "info"}
}

// Read loads the runner config and returns it together with the directory it
// was looked up in. A missing file is not an error. AOC_DEFAULT_YEAR,
// AOC_INPUT_ROOT and AOC_LOG_LEVEL override the file.
func Read() (Config, string, error) {
	cfg := defaults()
	path := Path()
	dir := ""
	if path != "" {
		dir = filepath.Dir(path)
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, dir, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, dir, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, dir, err
	}
	if cfg.DefaultYear <= 0 {
		cfg.DefaultYear = DefaultYear
	}
	if strings.TrimSpace(cfg.InputRoot) == "" {
		cfg.InputRoot = "."
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = "info"
	}
	return cfg, dir, nil
}

// Path returns the config file location: $AOC_CONFIG, else aoc/config.yaml
// under the user config dir.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("AOC_CONFIG")); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "aoc", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "aoc", "config.yaml")
	}
	return ""
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("AOC_DEFAULT_YEAR")); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AOC_DEFAULT_YEAR: %q is not a year", v)
		}
		cfg.DefaultYear = year
	}
	if v := strings.TrimSpace(os.Getenv("AOC_INPUT_ROOT")); v != "" {
		cfg.InputRoot = v
	}
	if v := strings.TrimSpace(os.Getenv("AOC_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	return nil
}
