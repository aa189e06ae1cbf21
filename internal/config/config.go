// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"ferret-records/internal/detector"
	"ferret-records/internal/parallel"
	"ferret-records/internal/records"

	"gopkg.in/yaml.v3"
)

// Built-in defaults used when neither a config file nor a flag sets a value
const (
	DefaultFormat     = "text"
	DefaultOutputFile = "arranged_financial_data.csv"
	DefaultWorkers    = 1
	DefaultChecks     = "all"

	// MaxWorkers bounds the workers setting
	MaxWorkers = parallel.MaxWorkers
)

// Settings are the values shared by the defaults block and every profile
type Settings struct {
	Format        string          `yaml:"format"`
	Checks        string          `yaml:"checks"`
	Verbose       bool            `yaml:"verbose"`
	Debug         bool            `yaml:"debug"`
	NoColor       bool            `yaml:"no_color"`
	Output        string          `yaml:"output"`
	Delimiter     string          `yaml:"delimiter"`
	Workers       int             `yaml:"workers"`
	NoMatchMarker string          `yaml:"no_match_marker"`
	Columns       records.Columns `yaml:"columns"`
}

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Settings `yaml:"defaults"`

	// Profiles for different classification scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile overrides the defaults when selected with --profile
type Profile struct {
	Settings    `yaml:",inline"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = DefaultFormat
	config.Defaults.Checks = DefaultChecks
	config.Defaults.Output = DefaultOutputFile
	config.Defaults.Workers = DefaultWorkers
	config.Defaults.Columns = records.DefaultColumns()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	// Partially specified column blocks keep the default names
	config.Defaults.Columns = config.Defaults.Columns.WithDefaults()

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in the current directory,
// then in the XDG config directory. It returns "" when none exists.
func FindConfigFile() string {
	// Project-specific config in the current directory
	for _, name := range []string{"ferret-records.yaml", ".ferret-records.yaml"} {
		if fileExists(name) {
			return name
		}
	}

	// User config
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "ferret-records", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// ListProfiles returns a sorted list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ValidateConfig checks the defaults and every profile
func ValidateConfig(config *Config) error {
	if err := validateSettings(config.Defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for _, name := range config.ListProfiles() {
		if err := validateSettings(config.Profiles[name].Settings); err != nil {
			return fmt.Errorf("profile '%s': %w", name, err)
		}
	}
	return nil
}

func validateSettings(s Settings) error {
	if s.Workers < 0 || s.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 0 and %d, got %d", MaxWorkers, s.Workers)
	}
	if _, err := ParseDelimiter(s.Delimiter); err != nil {
		return err
	}
	if _, err := ParseChecks(s.Checks); err != nil {
		return err
	}
	return nil
}

// ParseDelimiter converts a delimiter setting to a rune. "" means the
// delimiter is chosen from the input file extension and is returned as 0.
func ParseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}

	r, size := utf8.DecodeRuneInString(value)
	if size != len(value) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	if r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", value)
	}
	return r, nil
}

// ParseChecks converts a comma-separated list of check names into the set of
// enabled categories. "" and "all" enable every check.
func ParseChecks(checks string) (map[detector.Category]bool, error) {
	enabled := make(map[detector.Category]bool, len(detector.Categories))

	trimmed := strings.TrimSpace(checks)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		for _, c := range detector.Categories {
			enabled[c] = true
		}
		return enabled, nil
	}

	for _, check := range strings.Split(trimmed, ",") {
		name := strings.ToUpper(strings.TrimSpace(check))
		if name == "" {
			continue
		}
		c, ok := detector.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown check '%s'", name)
		}
		enabled[c] = true
	}
	if len(enabled) == 0 {
		return nil, fmt.Errorf("no checks selected")
	}
	return enabled, nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns the default configuration
// together with the load error so the caller can warn.
func LoadConfigOrDefault(configFile string) (*Config, string, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
		return cfg, "", err
	}
	return cfg, configPath, nil
}
