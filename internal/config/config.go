package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URL string `yaml:"url"` // empty means in-memory report store
	} `yaml:"database"`

	Redis struct {
		URL             string `yaml:"url"` // empty disables the cache
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"redis"`

	Gemini struct {
		APIKey     string `yaml:"api_key"`
		ModelName  string `yaml:"model_name"`
		MaxRetries int    `yaml:"max_retries"`
	} `yaml:"gemini"`

	Probe struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"probe"`

	Telegram struct {
		Enabled         bool   `yaml:"enabled"`
		BotToken        string `yaml:"bot_token"`
		ChatID          int64  `yaml:"chat_id"`
		ReportThreshold int    `yaml:"report_threshold"`
	} `yaml:"telegram"`
}

// LoadConfig loads configuration from a YAML file.
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

	// Set defaults
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Redis.CacheTTLSeconds == 0 {
		config.Redis.CacheTTLSeconds = 300
	}
	if config.Gemini.ModelName == "" {
		config.Gemini.ModelName = "gemini-2.0-flash-exp"
	}
	if config.Gemini.MaxRetries == 0 {
		config.Gemini.MaxRetries = 3
	}
	if config.Probe.TimeoutSeconds == 0 {
		config.Probe.TimeoutSeconds = 3
	}
	if config.Telegram.ReportThreshold == 0 {
		config.Telegram.ReportThreshold = 3
	}

	// Expand environment variables in secrets
	config.Database.URL = os.ExpandEnv(config.Database.URL)
	config.Redis.URL = os.ExpandEnv(config.Redis.URL)
	config.Gemini.APIKey = os.ExpandEnv(config.Gemini.APIKey)
	config.Telegram.BotToken = os.ExpandEnv(config.Telegram.BotToken)

	return config, nil
}
