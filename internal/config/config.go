package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	BankFeed BankFeedConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
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
}

// BankFeedConfig holds credentials for the account-aggregation provider.
// Environment selects the provider's sandbox or production endpoints.
type BankFeedConfig struct {
	ClientID    string
	Secret      string
	Environment string
	ClientName  string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	// DevUserID is the fallback identity used when no X-User-ID header is
	// present. Only honored outside production; every persistence call is
	// still scoped by an explicit user id.
	DevUserID uuid.UUID
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "cardledger_user"),
			Password:        getEnv("DB_PASSWORD", "cardledger_password"),
			Name:            getEnv("DB_NAME", "cardledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		BankFeed: BankFeedConfig{
			ClientID:    getEnv("PLAID_CLIENT_ID", ""),
			Secret:      getEnv("PLAID_SECRET", ""),
			Environment: getEnv("PLAID_ENV", "sandbox"),
			ClientName:  getEnv("PLAID_CLIENT_NAME", "Card Ledger"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.Security.DevUserID = config.loadDevUserID()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *BankFeedConfig) IsConfigured() bool {
	return c.ClientID != "" && c.Secret != ""
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

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadDevUserID resolves the development fallback identity
// Priority order:
// 1. If DEV_USER_ID is a valid UUID, use it (persists a stable dev identity)
// 2. If production, leave unset; production requests must carry X-User-ID
// 3. Otherwise generate a throwaway identity for this process
func (c *Config) loadDevUserID() uuid.UUID {
	if raw := os.Getenv("DEV_USER_ID"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			log.Printf("WARNING: DEV_USER_ID is not a valid UUID, ignoring: %v", err)
		} else {
			return id
		}
	}

	if c.IsProduction() {
		return uuid.Nil
	}

	id := uuid.New()
	log.Printf("Development environment: generated dev user id %s (set DEV_USER_ID to persist it across restarts)", id)
	return id
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
