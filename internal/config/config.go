package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the application configuration
type Config struct {
	Storage StorageConfig `toml:"storage"` // Local database settings
	Logging LoggingConfig `toml:"logging"` // Log level, format and file
	Weather WeatherConfig `toml:"wx"`      // AviationWeather.gov fetch settings
}

// StorageConfig contains local persistence settings
type StorageConfig struct {
	DataDir string `toml:"data_dir"` // Directory holding preflight-terminal.db
}

// LoggingConfig contains application logging settings
type LoggingConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn" or "error"
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // Log file path; the TUI owns stdout
}

// WeatherConfig contains METAR/TAF fetch settings
type WeatherConfig struct {
	APIBaseURL            string `toml:"api_base_url"`            // e.g. https://aviationweather.gov/api/data
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"` // Per-request HTTP timeout
	MaxRetries            int    `toml:"max_retries"`             // Extra attempts after the first failure
	CacheExpiryMinutes    int    `toml:"cache_expiry_minutes"`    // How long a fetched report is reused (0 disables)
	UserAgent             string `toml:"user_agent"`
}

// RequestTimeout returns the HTTP timeout as a duration
func (w WeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(w.RequestTimeoutSeconds) * time.Second
}

// CacheExpiry returns the report cache lifetime as a duration
func (w WeatherConfig) CacheExpiry() time.Duration {
	return time.Duration(w.CacheExpiryMinutes) * time.Minute
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir: "data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   filepath.Join("data", "preflight-terminal.log"),
		},
		Weather: WeatherConfig{
			APIBaseURL:            "https://aviationweather.gov/api/data",
			RequestTimeoutSeconds: 10,
			MaxRetries:            2,
			CacheExpiryMinutes:    10,
			UserAgent:             "PreflightTerminal/1.0 (github.com/ngmaloney/preflight-terminal)",
		},
	}
}

// Load reads a TOML file over the defaults. Unknown keys are rejected so
// typos do not silently fall back to default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// searchPaths are tried in order when no explicit path is given
var searchPaths = []string{
	filepath.Join("configs", "config.toml"),
	"config.toml",
}

// LoadWithFallback loads preferredPath if set, otherwise the first config file
// found in the search paths, otherwise the defaults.
func LoadWithFallback(preferredPath string) (*Config, error) {
	if preferredPath != "" {
		return Load(preferredPath)
	}

	for _, p := range searchPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		return fmt.Errorf("storage.data_dir must not be empty")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	if !strings.HasPrefix(c.Weather.APIBaseURL, "http://") && !strings.HasPrefix(c.Weather.APIBaseURL, "https://") {
		return fmt.Errorf("wx.api_base_url must be an http(s) URL, got %q", c.Weather.APIBaseURL)
	}
	if c.Weather.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("wx.request_timeout_seconds must be positive")
	}
	if c.Weather.MaxRetries < 0 {
		return fmt.Errorf("wx.max_retries must not be negative")
	}
	if c.Weather.CacheExpiryMinutes < 0 {
		return fmt.Errorf("wx.cache_expiry_minutes must not be negative")
	}

	return nil
}
