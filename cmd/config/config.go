package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	RabbitMQ    RabbitMQConfig
	Internal    InternalConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExp     time.Duration
	RefreshTokenExp    time.Duration
	BcryptCost         int
	SecureCookies      bool
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// InternalConfig is shared by the API (to guard /internal routes) and the
// notification consumer (to call them)
type InternalConfig struct {
	APIKey string
	APIURL string
}

// RateLimitRule allows Max requests per Window for a single client key
type RateLimitRule struct {
	Max    int
	Window time.Duration
}

type RateLimitConfig struct {
	Enabled bool
	// TrustProxy keys clients on X-Forwarded-For; only safe behind a proxy that overwrites it
	TrustProxy      bool
	General         RateLimitRule
	Auth            RateLimitRule
	RequestCreation RateLimitRule
	Rating          RateLimitRule
}

// Load reads .env when present, then the process environment
func Load() *Config {
	_ = godotenv.Load()

	env := envStr("APP_ENV", "development")
	return &Config{
		Environment: env,
		LogLevel:    envStr("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         envStr("PORT", "8000"),
			ReadTimeout:  envDur("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: envDur("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  envDur("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            envStr("DB_HOST", "localhost"),
			Port:            envInt("DB_PORT", 5433),
			User:            envStr("DB_USERNAME", "myuser"),
			Password:        envStr("DB_PASSWORD", "mypassword"),
			Name:            envStr("DB_NAME", "tamirse_db"),
			SSLMode:         envStr("DB_SSLMODE", "disable"),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			AutoMigrate:     envBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Host:     envStr("REDIS_HOST", "localhost"),
			Port:     envInt("REDIS_PORT", 6379),
			Password: envStr("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			AccessTokenSecret:  envStr("ACCESS_TOKEN_SECRET", ""),
			RefreshTokenSecret: envStr("REFRESH_TOKEN_SECRET", ""),
			AccessTokenExp:     envDur("ACCESS_TOKEN_EXP", 15*time.Minute),
			RefreshTokenExp:    envDur("REFRESH_TOKEN_EXP", 7*24*time.Hour),
			BcryptCost:         envInt("BCRYPT_COST", 10),
			SecureCookies:      env == "production",
		},
		RabbitMQ: RabbitMQConfig{
			Host:     envStr("RABBITMQ_HOST", "localhost"),
			Port:     envInt("RABBITMQ_PORT", 5672),
			User:     envStr("RABBITMQ_USER", "guest"),
			Password: envStr("RABBITMQ_PASSWORD", "guest"),
		},
		Internal: InternalConfig{
			APIKey: envStr("INTERNAL_API_KEY", ""),
			APIURL: envStr("INTERNAL_API_URL", "http://localhost:8000"),
		},
		RateLimit: RateLimitConfig{
			Enabled:         envBool("RATE_LIMIT_ENABLED", true),
			TrustProxy:      envBool("TRUST_PROXY", false),
			General:         RateLimitRule{Max: envInt("RATE_LIMIT_GENERAL_MAX", 100), Window: envDur("RATE_LIMIT_GENERAL_WINDOW", 15*time.Minute)},
			Auth:            RateLimitRule{Max: envInt("RATE_LIMIT_AUTH_MAX", 5), Window: envDur("RATE_LIMIT_AUTH_WINDOW", 15*time.Minute)},
			RequestCreation: RateLimitRule{Max: envInt("RATE_LIMIT_REQUEST_MAX", 10), Window: envDur("RATE_LIMIT_REQUEST_WINDOW", time.Hour)},
			Rating:          RateLimitRule{Max: envInt("RATE_LIMIT_RATING_MAX", 5), Window: envDur("RATE_LIMIT_RATING_WINDOW", time.Hour)},
		},
	}
}

// GetDSN returns the lib/pq connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// GetAMQPURL returns the RabbitMQ dial URL
func (c *Config) GetAMQPURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
