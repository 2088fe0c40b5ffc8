package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// APIKeyEnvVar names the environment variable holding the feed credential.
// The key is deliberately never read from the YAML file.
const APIKeyEnvVar = "BUSLOCATOR_API_KEY"

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig(path string) error {
	if path == "" {
		path = "config.yml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse unmarshals and validates a YAML configuration document,
// filling in defaults for optional fields.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	if cfg.Feed.APIKeyHeader == "" {
		cfg.Feed.APIKeyHeader = "api_key"
	}
	if cfg.Feed.TimeoutMS == 0 {
		cfg.Feed.TimeoutMS = 10000
	}
	if cfg.Poll.IntervalSeconds == 0 {
		cfg.Poll.IntervalSeconds = 30
	}
	if cfg.Poll.TargetTimezone == "" {
		cfg.Poll.TargetTimezone = "America/New_York"
	}
	if cfg.Poll.MaxIdentifiers == 0 {
		cfg.Poll.MaxIdentifiers = 10
	}
	if cfg.Redis.Key == "" {
		cfg.Redis.Key = "buslocator:snapshot"
	}
	if cfg.Redis.TTLSeconds == 0 {
		cfg.Redis.TTLSeconds = 90
	}
}

// FeedHeaders builds the header map for the feed client, merging the
// credential from the environment under the configured header name.
func (f FeedConfig) FeedHeaders() map[string]string {
	headers := map[string]string{}
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		headers[f.APIKeyHeader] = key
	}
	return headers
}
