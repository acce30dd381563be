package config

import (
	"time"

	"github.com/robdix/spanish-reading/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
	Reading  ReadingConfig  `yaml:"reading"`
	Export   ExportConfig   `yaml:"export"`
	Import   ImportConfig   `yaml:"import"`
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection pool settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds the settings for validating access tokens issued by the
// identity provider. This service never issues tokens itself.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"spanish-reading"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReadingConfig holds reader and progress settings.
type ReadingConfig struct {
	// ContextWindow is the number of characters kept on each side of a
	// looked-up phrase.
	ContextWindow   int    `yaml:"context_window"   env:"READING_CONTEXT_WINDOW"   env-default:"100"`
	DefaultTimezone string `yaml:"default_timezone" env:"READING_DEFAULT_TIMEZONE" env-default:"UTC"`
}

// ExportConfig holds vocabulary export settings.
type ExportConfig struct {
	// DefaultMappingsRaw lists export columns separated by "|"; the fields of
	// one column are separated by ",". Example: "phrase|definition,example".
	DefaultMappingsRaw string `yaml:"default_mappings" env:"EXPORT_DEFAULT_MAPPINGS" env-default:"phrase|definition,example,example_translation"`
	// FieldSeparator joins the fields of one default column.
	FieldSeparator string `yaml:"field_separator" env:"EXPORT_FIELD_SEPARATOR" env-default:"<br>"`
	MaxEntries     int    `yaml:"max_entries"     env:"EXPORT_MAX_ENTRIES"     env-default:"10000"`

	// DefaultMappings is parsed from DefaultMappingsRaw during validation.
	DefaultMappings []domain.FieldMapping `yaml:"-" env:"-"`
}

// ImportConfig holds article import settings.
type ImportConfig struct {
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"IMPORT_MAX_BODY_BYTES" env-default:"2097152"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"  env:"IMPORT_FETCH_TIMEOUT"  env-default:"15s"`
	UserAgent    string        `yaml:"user_agent"     env:"IMPORT_USER_AGENT"     env-default:"spanish-reading-importer/1.0"`
	// RateLimitPerMinute caps article uploads per user; 0 disables the limit.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"IMPORT_RATE_LIMIT_PER_MINUTE" env-default:"10"`
}
