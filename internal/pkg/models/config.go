package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	Services     ServicesConfig
	Tracking     TrackingConfig
	Notification NotificationConfig
	APIKey       APIKeyConfig
	Logger       LoggerConfig
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
	Driver    string
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

// ServicesConfig contains URLs for other services
type ServicesConfig struct {
	SafetyServiceURL       string
	NotificationServiceURL string
}

// TrackingConfig contains live tracking specific configuration
type TrackingConfig struct {
	PublishIntervalMs    int     `json:"publish_interval_ms"`    // Cadence of location publishes to shared storage
	FixTimeoutMs         int     `json:"fix_timeout_ms"`         // Max wait for a position fix before the sampler errors
	DeviationThresholdKm float64 `json:"deviation_threshold_km"` // Distance from the planned route that counts as a deviation
	LocationTTLHours     int     `json:"location_ttl_hours"`     // How long the latest-location cache is retained
}

// NotificationConfig contains SOS notification fan-out configuration
type NotificationConfig struct {
	MapLinkBase string `json:"map_link_base"` // Base URL for the location link embedded in alert messages
}

// APIKeyConfig contains API keys for service-to-service authentication
type APIKeyConfig struct {
	SafetyService       string
	NotificationService string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}
