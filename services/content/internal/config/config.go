package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/config"
)

// Config holds all configuration for the content gateway.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort    int    `env:"CONTENT_HTTP_PORT" envDefault:"8090"`

	// Headless CMS upstream
	CMSUpstreamURL string `env:"CMS_UPSTREAM_URL" envDefault:"http://localhost:1337"`
	CMSHealthPath  string `env:"CMS_HEALTH_PATH" envDefault:"/_health"`

	// Proxy transport
	ProxyDialTimeout     time.Duration `env:"PROXY_DIAL_TIMEOUT" envDefault:"5s"`
	ProxyResponseTimeout time.Duration `env:"PROXY_RESPONSE_TIMEOUT" envDefault:"30s"`
	ProxyIdleTimeout     time.Duration `env:"PROXY_IDLE_TIMEOUT" envDefault:"90s"`
	ProxyMaxIdleConns    int           `env:"PROXY_MAX_IDLE_CONNS" envDefault:"100"`

	// Shared secret the CMS sends in the Authorization header of webhook
	// calls. Empty disables the check.
	WebhookToken string `env:"WEBHOOK_TOKEN"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Tracing
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	PprofAllowedCIDRs  []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.1/32,::1/128" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load content config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := pkgconfig.ValidatePort("CONTENT_HTTP_PORT", c.HTTPPort); err != nil {
		return err
	}
	if err := pkgconfig.ValidateBaseURL("CMS_UPSTREAM_URL", c.CMSUpstreamURL); err != nil {
		return err
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be within [0, 1], got %v", c.OTELSampleRate)
	}
	if c.Environment == "production" && c.WebhookToken == "" {
		return fmt.Errorf("WEBHOOK_TOKEN must be set in production")
	}
	return nil
}
