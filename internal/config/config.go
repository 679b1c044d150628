package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url" env:"DATABASE_URL"`
	} `yaml:"database"`
	Auth struct {
		SecretKey          string `yaml:"secret_key" env:"SECRET_KEY"`
		Algorithm          string `yaml:"algorithm"`
		TokenExpireMinutes int    `yaml:"token_expire_minutes"`
	} `yaml:"auth"`
}

// LoadConfig reads configuration from the specified YAML file. Environment
// variables override the secrets (DATABASE_URL, SECRET_KEY).
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if config.Auth.SecretKey == "" {
		return nil, fmt.Errorf("auth.secret_key must be set")
	}
	if config.Auth.Algorithm == "" {
		config.Auth.Algorithm = "HS256"
	}
	if config.Auth.Algorithm != "HS256" {
		return nil, fmt.Errorf("unsupported signing algorithm %q", config.Auth.Algorithm)
	}
	if config.Auth.TokenExpireMinutes <= 0 {
		config.Auth.TokenExpireMinutes = 30
	}

	return config, nil
}
