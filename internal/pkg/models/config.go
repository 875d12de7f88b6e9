package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Google   GoogleConfig
	Match    MatchConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// GoogleConfig contains Google Maps Platform configuration
type GoogleConfig struct {
	MapsAPIKey string
}

// MatchConfig contains route matching defaults
type MatchConfig struct {
	RadiusMeters    float64 `json:"radius_meters"`     // matching radius around the route
	AverageSpeedKmh float64 `json:"average_speed_kmh"` // assumed speed for ETA estimates
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}
