package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig     `yaml:"http"`
	GRPC    GRPCConfig     `yaml:"grpc"`
	Redis   RedisConfig    `yaml:"redis"`
	Kafka   KafkaConfig    `yaml:"kafka"`
	Booking BookingConfig  `yaml:"booking"`
	Log     LogConfig      `yaml:"log"`
	Flights []FlightConfig `yaml:"flights"`
}

type HTTPConfig struct {
	Address     string `yaml:"address"`
	DocsEnabled bool   `yaml:"docs_enabled"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

// RedisConfig is optional; an empty Addr disables the flight cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig is optional; no brokers disables event publishing.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	FlightsCacheTTL int `yaml:"flights_cache_ttl_seconds"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FlightConfig seeds a flight at startup.
type FlightConfig struct {
	ID          string `yaml:"id"`
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	TotalSeats  int    `yaml:"total_seats"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Booking.FlightsCacheTTL <= 0 {
		c.Booking.FlightsCacheTTL = 30
	}
	if c.Kafka.BookingEventsTopic == "" {
		c.Kafka.BookingEventsTopic = "booking-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "seatbook-worker"
	}
}
