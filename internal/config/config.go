package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tpstats/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Stats      StatsConfig
	UI         UIConfig
	Fixture    FixtureConfig
	Timepoints []TimepointConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// StatsConfig holds the statistics backend settings
type StatsConfig struct {
	BaseURL string
	// Timeout of one request; zero disables it
	Timeout time.Duration
}

// UIConfig holds page rendering settings
type UIConfig struct {
	DebugEnabled   bool
	TimepointsFile string
}

// FixtureConfig holds settings of the development fixture backend
type FixtureConfig struct {
	Port      string
	Seed      int64
	Failing   []string
	Malformed []string
}

// TimepointConfig is one tab of the page
type TimepointConfig struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Active bool   `yaml:"active"`
}

type timepointsFile struct {
	Timepoints []TimepointConfig `yaml:"timepoints"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  *loadServerConfig(),
		Stats:   *loadStatsConfig(),
		UI:      *loadUIConfig(),
		Fixture: *loadFixtureConfig(),
	}

	timepoints, err := loadTimepoints(config.UI.TimepointsFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load timepoints")
	}
	config.Timepoints = timepoints

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadStatsConfig() *StatsConfig {
	return &StatsConfig{
		BaseURL: getEnvOrDefault("STATS_BASE_URL", "http://localhost:9090"),
		Timeout: getEnvDurationOrDefault("STATS_TIMEOUT", 0),
	}
}

func loadUIConfig() *UIConfig {
	return &UIConfig{
		DebugEnabled:   getEnvBoolOrDefault("DEBUG_ENABLED", false),
		TimepointsFile: getEnvOrDefault("TIMEPOINTS_FILE", ""),
	}
}

func loadFixtureConfig() *FixtureConfig {
	return &FixtureConfig{
		Port:      getEnvOrDefault("FIXTURE_PORT", "9090"),
		Seed:      int64(getEnvIntOrDefault("FIXTURE_SEED", 42)),
		Failing:   splitList(os.Getenv("FIXTURE_FAILING")),
		Malformed: splitList(os.Getenv("FIXTURE_MALFORMED")),
	}
}

// loadTimepoints reads the tab list from the YAML file when one is set,
// otherwise from the comma separated TIMEPOINTS variable. In the latter
// case the first timepoint is active.
func loadTimepoints(path string) ([]TimepointConfig, error) {
	if path != "" {
		return LoadTimepointsFile(path)
	}
	ids := splitList(getEnvOrDefault("TIMEPOINTS", "t0,t1,t2"))
	timepoints := make([]TimepointConfig, 0, len(ids))
	for i, id := range ids {
		timepoints = append(timepoints, TimepointConfig{ID: id, Label: id, Active: i == 0})
	}
	return timepoints, nil
}

// LoadTimepointsFile parses a YAML document of the form
//
//	timepoints:
//	  - id: t0
//	    label: Baseline
//	    active: true
func LoadTimepointsFile(path string) ([]TimepointConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read timepoints file %s", path)
	}
	var file timepointsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, fmt.Errorf("invalid timepoints file %s: %w", path, err))
	}
	return file.Timepoints, nil
}

func validateConfig(config *Config) error {
	if len(config.Timepoints) == 0 {
		return errors.ConfigInvalid("at least one timepoint is required")
	}
	seen := make(map[string]bool, len(config.Timepoints))
	active := 0
	for i, tp := range config.Timepoints {
		id := strings.TrimSpace(tp.ID)
		if id == "" {
			return errors.ConfigInvalid(fmt.Sprintf("timepoint %d has an empty id", i))
		}
		if seen[id] {
			return errors.ConfigInvalid(fmt.Sprintf("duplicate timepoint id %q", id))
		}
		seen[id] = true
		if tp.Active {
			active++
		}
	}
	if active > 1 {
		return errors.ConfigInvalid("at most one timepoint can be active")
	}
	if u, err := url.Parse(config.Stats.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errors.ConfigInvalid(fmt.Sprintf("invalid STATS_BASE_URL %q", config.Stats.BaseURL))
	}
	if config.Stats.Timeout < 0 {
		return errors.ConfigInvalid("STATS_TIMEOUT cannot be negative")
	}
	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
