package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherclient.app/pkg/client"
	"weatherclient.app/pkg/errors"
	"weatherclient.app/pkg/logger"
)

const (
	maxHTTPTimeoutSeconds = 120
	maxPortNumber         = 65535
)

// Config is the configuration of the weather CLI.
// The client library itself never reads the environment.
type Config struct {
	Weather   WeatherConfig   `split_words:"true"`
	Log       LogConfig       `split_words:"true"`
	Telemetry TelemetryConfig `split_words:"true"`
}

type WeatherConfig struct {
	APIKey             string       `envconfig:"WEATHER_API_KEY" required:"true"`
	Units              client.Units `envconfig:"WEATHER_UNITS" default:"metric"`
	HTTPTimeoutSeconds int          `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`

	// MockServerURL redirects both provider hosts to a local mock server when set
	MockServerURL string `envconfig:"WEATHER_MOCK_SERVER_URL"`
}

// HTTPTimeout returns the per-request timeout for the HTTP transport
func (w WeatherConfig) HTTPTimeout() time.Duration {
	return time.Duration(w.HTTPTimeoutSeconds) * time.Second
}

// ClientConfig converts the settings into a client.Config
func (w WeatherConfig) ClientConfig() client.Config {
	return client.Config{
		APIKey: w.APIKey,
		Units:  w.Units,
	}
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// File additionally journals client request events as JSON lines
	File string `envconfig:"LOG_FILE"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"weather-cli"`
	Insecure     bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

// Enabled reports whether traces should be exported
func (t TelemetryConfig) Enabled() bool {
	return t.OTLPEndpoint != ""
}

// MockServerConfig is the configuration of the mock provider server
type MockServerConfig struct {
	Port   int       `envconfig:"MOCK_SERVER_PORT" default:"8090"`
	APIKey string    `envconfig:"MOCK_SERVER_API_KEY" default:"test-api-key"`
	Log    LogConfig `split_words:"true"`
}

// Addr returns the listen address
func (m MockServerConfig) Addr() string {
	return fmt.Sprintf(":%d", m.Port)
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func LoadMockServerConfig() (*MockServerConfig, error) {
	var config MockServerConfig
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing mock server config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY cannot be empty", nil)
	}
	if !w.Units.IsValid() {
		return errors.NewConfigurationError("WEATHER_UNITS must be one of: metric, imperial", nil)
	}
	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.MockServerURL != "" {
		u, err := url.Parse(w.MockServerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.NewConfigurationError("WEATHER_MOCK_SERVER_URL must be an absolute URL", err)
		}
	}
	return nil
}

func (l *LogConfig) Validate() error {
	if _, ok := logger.ParseLevel(l.Level); !ok {
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	return nil
}

func (t *TelemetryConfig) Validate() error {
	if t.Enabled() && t.ServiceName == "" {
		return errors.NewConfigurationError("OTEL_SERVICE_NAME cannot be empty when OTEL_EXPORTER_OTLP_ENDPOINT is set", nil)
	}
	return nil
}

func (m *MockServerConfig) Validate() error {
	if m.Port < 1 || m.Port > maxPortNumber {
		return errors.NewConfigurationError("MOCK_SERVER_PORT must be between 1 and 65535", nil)
	}
	if m.APIKey == "" {
		return errors.NewConfigurationError("MOCK_SERVER_API_KEY cannot be empty", nil)
	}
	return m.Log.Validate()
}
