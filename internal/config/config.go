package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env    string       `mapstructure:"env"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Worker WorkerConfig `mapstructure:"worker"`
}

type LogConfig struct {
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type KafkaConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	Brokers []string    `mapstructure:"brokers"`
	GroupID string      `mapstructure:"group_id"`
	Topics  KafkaTopics `mapstructure:"topics"`
}

type KafkaTopics struct {
	Requests string `mapstructure:"requests"`
	Results  string `mapstructure:"results"`
	Logs     string `mapstructure:"logs"`
}

type WorkerConfig struct {
	PollInterval int `mapstructure:"poll_interval"`
}

// Load reads defaults, then an optional local.yaml, then environment
// variables (LOG_FILE overrides log.file and so on).
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("local")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")

	// Log defaults
	v.SetDefault("log.file", "calculator.log")
	v.SetDefault("log.console", true)

	// Server defaults
	v.SetDefault("server.port", "8080")

	// Kafka defaults
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.group_id", "scicalc")
	v.SetDefault("kafka.topics.requests", "calculation-requests")
	v.SetDefault("kafka.topics.results", "calculation-results")
	v.SetDefault("kafka.topics.logs", "calculator-logs")

	// Worker defaults
	v.SetDefault("worker.poll_interval", 5)
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers must not be empty when kafka is enabled")
	}

	return nil
}

func (c *Config) GetPollInterval() time.Duration {
	return time.Duration(c.Worker.PollInterval) * time.Second
}
