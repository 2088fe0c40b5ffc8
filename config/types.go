package config

// ServerConfig contains the HTTP presentation server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// FeedConfig contains the GTFS-Realtime vehicle-positions feed configuration
type FeedConfig struct {
	URL          string `yaml:"url" validate:"required,url"`
	APIKeyHeader string `yaml:"apiKeyHeader"`
	TimeoutMS    int    `yaml:"timeoutMS" validate:"gte=0"`
}

// PollConfig controls the poll loop cadence and the enrichment parameters
type PollConfig struct {
	IntervalSeconds int    `yaml:"intervalSeconds" validate:"gt=0"`
	TargetTimezone  string `yaml:"targetTimezone" validate:"required"`
	MaxIdentifiers  int    `yaml:"maxIdentifiers" validate:"gt=0"`
}

// RedisConfig contains the optional snapshot publisher configuration.
// An empty Address disables publishing.
type RedisConfig struct {
	Address    string `yaml:"address"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db" validate:"gte=0"`
	Key        string `yaml:"key"`
	TTLSeconds int    `yaml:"ttlSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Feed   FeedConfig   `yaml:"feed" validate:"required"`
	Poll   PollConfig   `yaml:"poll" validate:"required"`
	Redis  RedisConfig  `yaml:"redis"`
}
