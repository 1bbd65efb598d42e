package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Debug raises logging to debug level and enables per-request access logs.
	Debug bool `mapstructure:"debug"`
}

// Supported document store backends.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// DatabaseConfig contains all document-store settings.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=mongo postgres"`
	URI    string `mapstructure:"uri" validate:"required"`
	// Name overrides the database named in the Mongo connection string.
	Name string `mapstructure:"name"`
	// Collection is the Mongo collection holding list documents.
	Collection            string `mapstructure:"collection" validate:"required"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds" validate:"gt=0,lte=300"`
}
