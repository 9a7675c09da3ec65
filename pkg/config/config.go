package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("GROSAFE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	mode := viper.GetString("reporting.mode")
	if mode != "audio" && mode != "log" {
		return fmt.Errorf("invalid reporting mode %q: must be \"audio\" or \"log\"", mode)
	}

	if mode == "log" {
		if viper.GetString("reporting.log_path") == "" {
			return fmt.Errorf("reporting.log_path is required in log mode")
		}
		if viper.GetString("database.path") == "" {
			fmt.Println("Warning: No database path configured")
		}
	}

	if viper.GetString("speech.language") == "" {
		return fmt.Errorf("speech.language must not be empty")
	}

	if len(viper.GetStringSlice("translation.supported_targets")) == 0 {
		return fmt.Errorf("translation.supported_targets must list at least one language")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Reporting.Mode != "audio" && c.Reporting.Mode != "log" {
		return fmt.Errorf("invalid reporting mode %q: must be \"audio\" or \"log\"", c.Reporting.Mode)
	}

	if c.Speech.Language == "" {
		return fmt.Errorf("speech.language must not be empty")
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/reports.db")
	viper.SetDefault("database.log_queries", false)

	// Reporting defaults
	viper.SetDefault("reporting.mode", "log")
	viper.SetDefault("reporting.log_path", "./data/reports.csv")
	viper.SetDefault("reporting.max_audio_bytes", 10485760)

	// Speech recognition defaults. Recognition language is fixed and
	// independent of the user-selected translation target.
	viper.SetDefault("speech.language", "en-US")
	viper.SetDefault("speech.credentials_file", "")

	// Translation defaults
	viper.SetDefault("translation.supported_targets", []string{"en", "es", "fr", "de", "zh", "ja"})
	viper.SetDefault("translation.credentials_file", "")

	// Synthesis defaults
	viper.SetDefault("synthesis.credentials_file", "")
}
