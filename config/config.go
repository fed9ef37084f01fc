package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".marvelgo"))
		}

		// Check /etc
		v.AddConfigPath("/etc/marvelgo/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Marvel defaults
	v.SetDefault("marvel.base_url", "https://gateway.marvel.com")
	v.SetDefault("marvel.timeout", 30.0)
	v.SetDefault("marvel.max_retries", 3)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Marvel.PublicKey == "" || cfg.Marvel.PublicKey == "your-public-key-here" {
		return fmt.Errorf("marvel.public_key must be set to a valid API key")
	}

	if cfg.Marvel.PrivateKey == "" || cfg.Marvel.PrivateKey == "your-private-key-here" {
		return fmt.Errorf("marvel.private_key must be set to a valid API key")
	}

	if cfg.Marvel.Timeout <= 0 {
		return fmt.Errorf("marvel.timeout must be positive, got %v", cfg.Marvel.Timeout)
	}

	if cfg.Marvel.MaxRetries < 1 {
		return fmt.Errorf("marvel.max_retries must be at least 1, got %d", cfg.Marvel.MaxRetries)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
