package config

import (
	"strings"
	"time"
)

type HTTPConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	// Upper bound for handling one inbound request. Zero disables it.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
}

// UpstreamConfig points at the public Pokémon data API.
type UpstreamConfig struct {
	// e.g. "https://pokeapi.co/api/v2/"
	BaseURL string `env:"API_POKE" envDefault:"https://pokeapi.co/api/v2/" validate:"required,url"`
	// Per-call timeout; zero means upstream calls are only bounded by the inbound request.
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"0s"`
}

// EffectiveBaseURL returns BaseURL with a trailing slash so relative
// resources like "type/4" resolve underneath it.
func (c UpstreamConfig) EffectiveBaseURL() string {
	if strings.HasSuffix(c.BaseURL, "/") {
		return c.BaseURL
	}
	return c.BaseURL + "/"
}

type CORSConfig struct {
	AllowedOrigin string `env:"ORIGIN" envDefault:"http://localhost:3000" validate:"required"`
}

type KafkaConfig struct {
	Enabled     bool     `env:"ENABLED" envDefault:"false"`
	Brokers     []string `env:"BROKERS" envSeparator:"," validate:"required_if=Enabled true"`
	ClientID    string   `env:"CLIENT_ID" envDefault:"pokemon-api"`
	GroupID     string   `env:"GROUP_ID" envDefault:"pokemon-api"`
	TopicPrefix string   `env:"TOPIC_PREFIX"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"pokemon-api"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "otel-collector:4317"
	OtelEndpoint string `env:"ENDPOINT"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`

	HTTP          HTTPConfig `envPrefix:"HTTP_"`
	Upstream      UpstreamConfig
	CORS          CORSConfig          `envPrefix:"CORS_"`
	Kafka         KafkaConfig         `envPrefix:"KAFKA_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
}
