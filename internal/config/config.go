package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	App      AppConfig
	Geocoder GeocoderConfig
	Cache    CacheConfig
	Model    ModelConfig
	History  HistoryConfig
	Metrics  MetricsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           int
	GinMode        string // debug, release, test
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	PriceMultiplier float64 // Model output unit -> rupees
	CurrencySymbol  string
	CurrencyCode    string
}

// GeocoderConfig holds reverse-geocoding provider configuration
type GeocoderConfig struct {
	BaseURL   string
	UserAgent string
	Language  string
	Timeout   time.Duration
}

// CacheConfig selects where resolved locations are memoized
type CacheConfig struct {
	Backend string // memory, redis
	Redis   RedisConfig
}

// RedisConfig holds Redis connection settings for the geocode cache
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration // 0 keeps entries forever
}

// ModelConfig points at the serialized regression artifact
type ModelConfig struct {
	Path string
}

// HistoryConfig controls persistence of served predictions
type HistoryConfig struct {
	Enabled        bool
	DSN            string
	MaxConnections int
}

// MetricsConfig controls the prometheus endpoint
type MetricsConfig struct {
	Enabled bool
	Path    string
}

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.house-price")

	setDefaults(v)

	// Read from environment variables, e.g. HOUSE_PRICE_GEOCODER_TIMEOUT=5s
	v.SetEnvPrefix("HOUSE_PRICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.allowedorigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.pricemultiplier", 100000.0)
	v.SetDefault("app.currencysymbol", "₹")
	v.SetDefault("app.currencycode", "INR")
	v.SetDefault("geocoder.baseurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("geocoder.useragent", "house-price")
	v.SetDefault("geocoder.language", "en")
	v.SetDefault("geocoder.timeout", 10*time.Second)
	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.ttl", time.Duration(0))
	v.SetDefault("model.path", "models/model1.json")
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.dsn", "")
	v.SetDefault("history.maxconnections", 5)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// Validate rejects settings the application cannot start with
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Geocoder.Timeout <= 0 {
		return fmt.Errorf("geocoder timeout must be positive, got %s", c.Geocoder.Timeout)
	}
	switch strings.ToLower(c.Cache.Backend) {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Model.Path == "" {
		return errors.New("model path is required")
	}
	if c.App.PriceMultiplier <= 0 {
		return fmt.Errorf("price multiplier must be positive, got %v", c.App.PriceMultiplier)
	}
	if c.History.Enabled && c.History.DSN == "" {
		return errors.New("history is enabled but no DSN is configured")
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
