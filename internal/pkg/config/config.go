package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Adeakim/lincride/internal/pkg/models"
)

// InitConfig loads configuration from the environment, reading a .env file
// first when running locally.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		var err error
		if configPath != "" {
			err = godotenv.Load(configPath)
		} else {
			err = godotenv.Load()
		}
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "lincride")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "lincride")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// Google Maps config
	configs.Google.MapsAPIKey = GetEnv("GOOGLE_MAPS_API_KEY", "")

	// Match config
	configs.Match.RadiusMeters = GetEnvAsFloat("MATCH_RADIUS_METERS", 500)
	configs.Match.AverageSpeedKmh = GetEnvAsFloat("MATCH_AVERAGE_SPEED_KMH", 30)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}
