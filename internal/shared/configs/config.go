package configs

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Redis  RedisConfig  `mapstructure:"redis" validate:"required"`
	Stats  StatsConfig  `mapstructure:"stats" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// RedisConfig holds counter store backend configuration.
type RedisConfig struct {
	URL        string `mapstructure:"url" validate:"required"` // e.g. redis://localhost:6379/0
	PoolSize   int    `mapstructure:"pool_size" validate:"min=0"`
	MaxRetries int    `mapstructure:"max_retries" validate:"min=0"`
}

// StatsConfig holds aggregation engine configuration.
type StatsConfig struct {
	QueuePartitions int `mapstructure:"queue_partitions" validate:"required,min=1,max=64"`
}
