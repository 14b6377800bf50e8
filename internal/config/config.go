package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// API
	APIURL string `mapstructure:"TALLER_API_URL"`
	Token  string `mapstructure:"TALLER_TOKEN"`

	// UI
	PageSize int    `mapstructure:"PAGE_SIZE"`
	Env      string `mapstructure:"APP_ENV"` // development | production
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("TALLER_API_URL", "http://localhost:8082/tallermecanico/api")
	viper.SetDefault("TALLER_TOKEN", "")
	viper.SetDefault("PAGE_SIZE", 10)
	viper.SetDefault("APP_ENV", "development")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
