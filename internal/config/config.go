package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Security SecurityConfig
	Stats    StatsConfig
	Events   EventsConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDemoData    bool // load every *.sql file under SeedsPath after migrating
	MigrationsPath  string
	SeedsPath       string
	ReadyRetries    int
	ReadyInterval   time.Duration
}

// AuthConfig describes how bearer tokens issued by the identity provider are verified.
// JWKSIssuerURL takes precedence over PublicKey when both are set.
type AuthConfig struct {
	JWKSIssuerURL string
	Audience      string
	Issuer        string
	PublicKey     *rsa.PublicKey
	ClockSkew     time.Duration
	JWKSCacheTTL  time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type StatsConfig struct {
	MaxDateRangeDays int
	DefaultCurrency  string
}

type EventsConfig struct {
	AMQPURL        string
	Exchange       string
	Queue          string
	PublishTimeout time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance_user"),
			Password:        getEnv("DB_PASSWORD", "finance_password"),
			Name:            getEnv("DB_NAME", "finance_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
			SeedDemoData:    getBoolEnv("SEED_DATABASE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
			ReadyRetries:    getIntEnv("DB_READY_RETRIES", 30),
			ReadyInterval:   getDurationEnv("DB_READY_INTERVAL", 2*time.Second),
		},
		Auth: AuthConfig{
			JWKSIssuerURL: getEnv("AUTH_JWKS_ISSUER_URL", ""),
			Audience:      getEnv("AUTH_AUDIENCE", ""),
			Issuer:        getEnv("AUTH_ISSUER", ""),
			ClockSkew:     getDurationEnv("AUTH_CLOCK_SKEW", time.Minute),
			JWKSCacheTTL:  getDurationEnv("AUTH_JWKS_CACHE_TTL", 5*time.Minute),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Stats: StatsConfig{
			MaxDateRangeDays: getIntEnv("STATS_MAX_DATE_RANGE_DAYS", 90),
			DefaultCurrency:  strings.ToUpper(getEnv("DEFAULT_CURRENCY", "USD")),
		},
		Events: EventsConfig{
			AMQPURL:        getEnv("AMQP_URL", ""),
			Exchange:       getEnv("AMQP_EXCHANGE", "finance.events"),
			Queue:          getEnv("AMQP_QUEUE", "transactions.recorded"),
			PublishTimeout: getDurationEnv("AMQP_PUBLISH_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	publicKey, err := loadAuthPublicKey(os.Getenv("AUTH_PUBLIC_KEY"))
	if err != nil {
		return nil, fmt.Errorf("failed to load AUTH_PUBLIC_KEY: %w", err)
	}
	config.Auth.PublicKey = publicKey

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the loaded configuration can serve requests.
func (c *Config) Validate() error {
	if c.Auth.JWKSIssuerURL == "" && c.Auth.PublicKey == nil {
		return errors.New("either AUTH_JWKS_ISSUER_URL or AUTH_PUBLIC_KEY must be set")
	}
	if c.Auth.JWKSIssuerURL != "" && c.Auth.Audience == "" {
		return errors.New("AUTH_AUDIENCE is required when AUTH_JWKS_ISSUER_URL is set")
	}
	if c.Stats.MaxDateRangeDays <= 0 {
		return fmt.Errorf("STATS_MAX_DATE_RANGE_DAYS must be positive, got %d", c.Stats.MaxDateRangeDays)
	}
	if c.Security.RateLimitPerSecond <= 0 || c.Security.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// EventsEnabled reports whether transaction events should be published to a broker.
func (c *Config) EventsEnabled() bool {
	return c.Events.AMQPURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Warn().Msg("CORS_ALLOW_ORIGINS not set in production, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

// loadAuthPublicKey decodes the identity provider's base64-encoded PEM public key.
// An empty value yields a nil key.
func loadAuthPublicKey(publicKeyB64 string) (*rsa.PublicKey, error) {
	if publicKeyB64 == "" {
		return nil, nil
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	return ParseRSAPublicKey(publicKeyBytes)
}

// ParseRSAPublicKey loads an RSA public key from PEM format (PKIX or PKCS1)
func ParseRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		rsaKey, pkcs1Err := x509.ParsePKCS1PublicKey(block.Bytes)
		if pkcs1Err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		return rsaKey, nil
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
