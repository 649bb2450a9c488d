package config

import (
	"errors"
	"os"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// DefaultUserAgent identifies the viewer to api.weather.gov, which requires a
// contact-bearing User-Agent on every request.
const DefaultUserAgent = "nws-alerts-viewer (ops@example.com)"

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// NWS API client configuration.
	NWSBaseURL   string
	NWSUserAgent string
	NWSTimeout   time.Duration // zero disables the client timeout

	// Optional Kafka sink for normalized alert rows.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	nwsTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("NWS_TIMEOUT", "0"))
	if err != nil || nwsTimeout < 0 {
		return nil, errors.New("invalid NWS_TIMEOUT")
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		NWSBaseURL:   strings.TrimRight(sharedcfg.EnvOrDefault("NWS_BASE_URL", "https://api.weather.gov"), "/"),
		NWSUserAgent: sharedcfg.EnvOrDefault("NWS_USER_AGENT", DefaultUserAgent),
		NWSTimeout:   nwsTimeout,

		KafkaEnabled: os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers: sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "nws-active-alerts"),
	}

	if cfg.NWSBaseURL == "" {
		return nil, errors.New("NWS_BASE_URL is required")
	}
	if strings.TrimSpace(cfg.NWSUserAgent) == "" {
		return nil, errors.New("NWS_USER_AGENT is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required")
	}

	return cfg, nil
}
