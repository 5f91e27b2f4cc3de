// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront backend
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Security SecurityConfig
	Cart     CartConfig
	Gateway  GatewayConfig
	ERP      ERPConfig
	Delivery DeliveryConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name          string
	Version       string
	Environment   string
	Debug         bool
	DefaultLocale string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// CartConfig contains session cart configuration
type CartConfig struct {
	SessionTTL    time.Duration
	CookieMaxAge  int
	EnforceStock  bool
	UpdateRetries int
}

// GatewayConfig contains the simulated payment gateway configuration
type GatewayConfig struct {
	Currency        string
	InitiateLatency time.Duration
	ProcessLatency  time.Duration
	SuccessRate     float64
	SessionTTL      time.Duration
}

// ERPConfig contains the stock sync (Solver ERP) configuration
type ERPConfig struct {
	SyncLatency       time.Duration
	WarehouseLocation string
	MaxMockQuantity   int
}

// DeliveryConfig contains the delivery estimation (Reboost) configuration
type DeliveryConfig struct {
	EstimateLatency  time.Duration
	ExpressOpenHour  int
	ExpressCloseHour int
	NextDayMinutes   int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "Shams Web Platform"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			Environment:   getEnv("APP_ENV", "development"),
			Debug:         getEnvAsBool("APP_DEBUG", true),
			DefaultLocale: getEnv("APP_DEFAULT_LOCALE", "ar"),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "shams_db"),
			User:         getEnv("DB_USER", "shams_user"),
			Password:     getEnv("DB_PASSWORD", "shams_password"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 300*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Accept-Language"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Cart: CartConfig{
			SessionTTL:    getEnvAsDuration("CART_SESSION_TTL", 24*time.Hour),
			CookieMaxAge:  getEnvAsInt("CART_COOKIE_MAX_AGE", 86400),
			EnforceStock:  getEnvAsBool("CART_ENFORCE_STOCK", true),
			UpdateRetries: getEnvAsInt("CART_UPDATE_RETRIES", 5),
		},
		Gateway: GatewayConfig{
			Currency:        getEnv("GATEWAY_CURRENCY", "SAR"),
			InitiateLatency: getEnvAsDuration("GATEWAY_INITIATE_LATENCY", 800*time.Millisecond),
			ProcessLatency:  getEnvAsDuration("GATEWAY_PROCESS_LATENCY", 1500*time.Millisecond),
			SuccessRate:     getEnvAsFloat("GATEWAY_SUCCESS_RATE", 0.95),
			SessionTTL:      getEnvAsDuration("GATEWAY_SESSION_TTL", time.Hour),
		},
		ERP: ERPConfig{
			SyncLatency:       getEnvAsDuration("ERP_SYNC_LATENCY", 400*time.Millisecond),
			WarehouseLocation: getEnv("ERP_WAREHOUSE_LOCATION", "Main Branch - Riyadh"),
			MaxMockQuantity:   getEnvAsInt("ERP_MAX_MOCK_QUANTITY", 50),
		},
		Delivery: DeliveryConfig{
			EstimateLatency:  getEnvAsDuration("DELIVERY_ESTIMATE_LATENCY", 600*time.Millisecond),
			ExpressOpenHour:  getEnvAsInt("DELIVERY_EXPRESS_OPEN_HOUR", 8),
			ExpressCloseHour: getEnvAsInt("DELIVERY_EXPRESS_CLOSE_HOUR", 22),
			NextDayMinutes:   getEnvAsInt("DELIVERY_NEXT_DAY_MINUTES", 1440),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}

	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	if c.App.DefaultLocale != "ar" && c.App.DefaultLocale != "en" {
		return fmt.Errorf("APP_DEFAULT_LOCALE must be 'ar' or 'en'")
	}

	if c.Gateway.SuccessRate < 0 || c.Gateway.SuccessRate > 1 {
		return fmt.Errorf("GATEWAY_SUCCESS_RATE must be between 0 and 1")
	}

	if c.Delivery.ExpressOpenHour < 0 || c.Delivery.ExpressCloseHour > 23 ||
		c.Delivery.ExpressOpenHour > c.Delivery.ExpressCloseHour {
		return fmt.Errorf("invalid delivery express hours window")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
