package config

import (
	"os"
	"strconv"
	"time"

	"github.com/MZidanFI/Bioskop-Project/internal/database"
	"github.com/MZidanFI/Bioskop-Project/internal/messaging"
)

// Config holds the whole application configuration
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	// Single distinguished admin account created at first start
	AdminUsername string
	AdminPassword string

	JWT           JWTConfig
	Database      database.Config
	Redis         RedisConfig
	NATS          messaging.Config
	Elasticsearch ElasticsearchConfig
}

// JWTConfig configures token issuing for login sessions
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// RedisConfig configures the cache client
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "123"),

		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "kunci_rahasia_bioskop"),
			TTL:    time.Duration(getEnvInt("JWT_TTL_MIN", 720)) * time.Minute,
		},

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "bioskop"),
			Password:           getEnv("DB_PASSWORD", "bioskop123"),
			DBName:             getEnv("DB_NAME", "bioskop"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},

		NATS: messaging.Config{
			Enabled:   getEnv("NATS_ENABLED", "false") == "true",
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "bioskop"),
			ClientID:  getEnv("NATS_CLIENT_ID", "bioskop-api"),
		},

		Elasticsearch: LoadElasticsearchConfig(),
	}
}

// getEnv returns an environment variable or the given default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or the given default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
