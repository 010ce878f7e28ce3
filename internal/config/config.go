package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type OpenAI struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	Model         string        `mapstructure:"model"`
	Temperature   float64       `mapstructure:"temperature"`
	MaxToolRounds int           `mapstructure:"max_tool_rounds"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Addr     string `mapstructure:"addr"`
	DBPath   string `mapstructure:"db_path"`
	LogLevel string `mapstructure:"log_level"`
	OpenAI   OpenAI `mapstructure:"openai"`
}

// Load reads configuration from the environment, with a best-effort .env
// file on top. An empty OPENAI_API_KEY disables tool-assisted
// recommendations; everything else has a working default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "gym_membership.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.max_tool_rounds", 8)
	v.SetDefault("openai.timeout", 60*time.Second)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return &cfg, nil
}
