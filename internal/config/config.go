package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Storage  StorageConfig
	Data     DataConfig
	Boarding BoardingConfig
	Redis    RedisConfig
	Feed     FeedConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type LogConfig struct {
	Level string
}

type StorageConfig struct {
	// SQLitePath is the local database file holding the custom waypoint
	// store.
	SQLitePath string
}

type DataConfig struct {
	ItineraryPath string
	ReferencePath string
}

type BoardingConfig struct {
	// Deadline is the all-aboard time, "HH:MM" on the operating day.
	Deadline string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type FeedConfig struct {
	// Enabled turns on the Redis-stream position feed worker. The HTTP
	// ingestion endpoint works regardless.
	Enabled       bool
	Stream        string
	ConsumerGroup string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine, environment variables alone are enough.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Storage: StorageConfig{
			SQLitePath: viper.GetString("STORAGE_SQLITE_PATH"),
		},
		Data: DataConfig{
			ItineraryPath: viper.GetString("DATA_ITINERARY_PATH"),
			ReferencePath: viper.GetString("DATA_REFERENCE_PATH"),
		},
		Boarding: BoardingConfig{
			Deadline: viper.GetString("BOARDING_DEADLINE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Feed: FeedConfig{
			Enabled:       viper.GetBool("FEED_ENABLED"),
			Stream:        viper.GetString("FEED_STREAM"),
			ConsumerGroup: viper.GetString("FEED_CONSUMER_GROUP"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/companion.db"
	}
	if cfg.Data.ItineraryPath == "" {
		cfg.Data.ItineraryPath = "data/itinerary.json"
	}
	if cfg.Data.ReferencePath == "" {
		cfg.Data.ReferencePath = "data/reference.json"
	}
	if cfg.Boarding.Deadline == "" {
		cfg.Boarding.Deadline = "18:30"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Feed.Stream == "" {
		cfg.Feed.Stream = "position:updates"
	}
	if cfg.Feed.ConsumerGroup == "" {
		cfg.Feed.ConsumerGroup = "companion-position-feed"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
