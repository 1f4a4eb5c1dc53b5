package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	HSN     HSNConfig
	Invoice InvoiceConfig
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// HSNConfig controls the code catalog and matcher.
type HSNConfig struct {
	// TuningFile optionally points at a YAML or JSON file of matcher weight
	// overrides. See LoadHSNWeights.
	TuningFile     string        `mapstructure:"tuning_file"`
	ReloadInterval time.Duration `mapstructure:"reload_interval"`
	SearchLimit    int           `mapstructure:"search_limit"`
	MaxSearchLimit int           `mapstructure:"max_search_limit"`
}

// InvoiceConfig holds invoice numbering settings.
type InvoiceConfig struct {
	NumberPrefix string `mapstructure:"number_prefix"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from environment variables with the GSTBOOK_ prefix.
// A .env file in the working directory is read first when present; variables
// already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GSTBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstbook")
	v.SetDefault("db.password", "gstbook_secret")
	v.SetDefault("db.name", "gstbook")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// HSN defaults
	v.SetDefault("hsn.tuning_file", "")
	v.SetDefault("hsn.reload_interval", "0s")
	v.SetDefault("hsn.search_limit", 10)
	v.SetDefault("hsn.max_search_limit", 50)

	v.SetDefault("invoice.number_prefix", "INV")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "GSTBOOK_SERVER_PORT",
		"server.read_timeout":     "GSTBOOK_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "GSTBOOK_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "GSTBOOK_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":      "GSTBOOK_SERVER_ENVIRONMENT",
		"db.host":                 "GSTBOOK_DB_HOST",
		"db.port":                 "GSTBOOK_DB_PORT",
		"db.user":                 "GSTBOOK_DB_USER",
		"db.password":             "GSTBOOK_DB_PASSWORD",
		"db.name":                 "GSTBOOK_DB_NAME",
		"db.sslmode":              "GSTBOOK_DB_SSLMODE",
		"db.max_open":             "GSTBOOK_DB_MAX_OPEN",
		"db.max_idle":             "GSTBOOK_DB_MAX_IDLE",
		"log.level":               "GSTBOOK_LOG_LEVEL",
		"log.format":              "GSTBOOK_LOG_FORMAT",
		"cors.allowed_origins":    "GSTBOOK_CORS_ALLOWED_ORIGINS",
		"hsn.tuning_file":         "GSTBOOK_HSN_TUNING_FILE",
		"hsn.reload_interval":     "GSTBOOK_HSN_RELOAD_INTERVAL",
		"hsn.search_limit":        "GSTBOOK_HSN_SEARCH_LIMIT",
		"hsn.max_search_limit":    "GSTBOOK_HSN_MAX_SEARCH_LIMIT",
		"invoice.number_prefix":   "GSTBOOK_INVOICE_NUMBER_PREFIX",
		"metrics.enabled":         "GSTBOOK_METRICS_ENABLED",
		"metrics.path":            "GSTBOOK_METRICS_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Platform hosts set a PORT env var. Use it if GSTBOOK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTBOOK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.HSN = HSNConfig{
		TuningFile:     v.GetString("hsn.tuning_file"),
		ReloadInterval: v.GetDuration("hsn.reload_interval"),
		SearchLimit:    v.GetInt("hsn.search_limit"),
		MaxSearchLimit: v.GetInt("hsn.max_search_limit"),
	}
	if cfg.HSN.SearchLimit <= 0 || cfg.HSN.MaxSearchLimit < cfg.HSN.SearchLimit {
		return nil, fmt.Errorf("config: invalid hsn search limits %d/%d", cfg.HSN.SearchLimit, cfg.HSN.MaxSearchLimit)
	}

	cfg.Invoice = InvoiceConfig{
		NumberPrefix: v.GetString("invoice.number_prefix"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}

	return cfg, nil
}
