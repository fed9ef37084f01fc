package config

// Config represents the complete configuration structure
type Config struct {
	Marvel  MarvelConfig  `mapstructure:"marvel"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MarvelConfig holds Marvel API credentials and client tuning
type MarvelConfig struct {
	PublicKey  string  `mapstructure:"public_key"`
	PrivateKey string  `mapstructure:"private_key"`
	BaseURL    string  `mapstructure:"base_url"`
	Timeout    float64 `mapstructure:"timeout"`
	MaxRetries int     `mapstructure:"max_retries"`
}

// FilterConfig contains named filter presets for list commands
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
