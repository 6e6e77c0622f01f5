package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/config"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/database"
)

// Config holds all configuration for the storefront.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort    int    `env:"STOREFRONT_HTTP_PORT" envDefault:"3000"`

	// Content
	ContentServiceURL  string        `env:"CONTENT_SERVICE_URL" envDefault:"http://localhost:8090"`
	MediaBaseURL       string        `env:"MEDIA_BASE_URL" envDefault:"http://localhost:1337"`
	ContentTimeout     time.Duration `env:"CONTENT_TIMEOUT" envDefault:"10s"`
	CollectionPageSize int           `env:"COLLECTION_PAGE_SIZE" envDefault:"24"`

	// Response cache
	CacheEnabled      bool          `env:"CACHE_ENABLED" envDefault:"true"`
	LandingRevalidate time.Duration `env:"LANDING_REVALIDATE" envDefault:"60s"`
	ProductRevalidate time.Duration `env:"PRODUCT_REVALIDATE" envDefault:"300s"`
	GlobalRevalidate  time.Duration `env:"GLOBAL_REVALIDATE" envDefault:"300s"`

	// Redis
	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	KafkaGroupID string   `env:"KAFKA_GROUP_ID" envDefault:"storefront"`

	// Per-IP limit on POST routes
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

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
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Redis returns the Redis connection settings.
func (c *Config) Redis() database.RedisConfig {
	rc := database.DefaultRedisConfig()
	rc.Host = c.RedisHost
	rc.Port = c.RedisPort
	rc.Password = c.RedisPassword
	rc.DB = c.RedisDB
	return rc
}

func (c *Config) validate() error {
	if err := pkgconfig.ValidatePort("STOREFRONT_HTTP_PORT", c.HTTPPort); err != nil {
		return err
	}
	if err := pkgconfig.ValidateBaseURL("CONTENT_SERVICE_URL", c.ContentServiceURL); err != nil {
		return err
	}
	if err := pkgconfig.ValidateBaseURL("MEDIA_BASE_URL", c.MediaBaseURL); err != nil {
		return err
	}
	if c.CollectionPageSize < 1 || c.CollectionPageSize > 100 {
		return fmt.Errorf("COLLECTION_PAGE_SIZE must be within [1, 100], got %d", c.CollectionPageSize)
	}
	if c.ContentTimeout <= 0 {
		return fmt.Errorf("CONTENT_TIMEOUT must be positive")
	}
	if c.LandingRevalidate < 0 || c.ProductRevalidate < 0 || c.GlobalRevalidate < 0 {
		return fmt.Errorf("revalidate windows must not be negative")
	}
	if c.CacheEnabled {
		if err := pkgconfig.ValidatePort("REDIS_PORT", c.RedisPort); err != nil {
			return err
		}
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be within [0, 1], got %v", c.OTELSampleRate)
	}
	return nil
}
