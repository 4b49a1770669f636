package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyDatabaseURL        = "database_url"
	KeyPort               = "port"
	KeyLogLevel           = "log_level"
	KeyLogFormat          = "log_format"
	KeyCORSAllowedOrigins = "cors_allowed_origins"
	KeyDBMaxOpenConns     = "db_max_open_conns"
	KeyDBMaxIdleConns     = "db_max_idle_conns"
	KeyDBConnMaxLifetime  = "db_conn_max_lifetime"
	KeyHTTPReadTimeout    = "http_read_timeout"
	KeyHTTPWriteTimeout   = "http_write_timeout"
	KeyHTTPIdleTimeout    = "http_idle_timeout"
	KeyShutdownTimeout    = "shutdown_timeout"
)

type Config struct {
	DatabaseURL        string
	Port               string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// SetDefaults registers defaults and environment bindings on v. Every key is
// read from the upper-cased environment variable of the same name.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabaseURL, "postgresql://wp:wp@postgres-service:5432/finance_tracker_db")
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyCORSAllowedOrigins, "http://localhost,http://localhost:3000,http://finance.local")
	v.SetDefault(KeyDBMaxOpenConns, 50)
	v.SetDefault(KeyDBMaxIdleConns, 25)
	v.SetDefault(KeyDBConnMaxLifetime, 5*time.Minute)
	v.SetDefault(KeyHTTPReadTimeout, 15*time.Second)
	v.SetDefault(KeyHTTPWriteTimeout, 15*time.Second)
	v.SetDefault(KeyHTTPIdleTimeout, 60*time.Second)
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)

	v.AutomaticEnv()
}

// LoadDotEnv loads a .env file into the process environment. A missing file
// is reported but callers are free to continue with the system environment.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Load builds a Config from v. Call SetDefaults on v first.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:        v.GetString(KeyDatabaseURL),
		Port:               v.GetString(KeyPort),
		LogLevel:           strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:          strings.ToLower(v.GetString(KeyLogFormat)),
		CORSAllowedOrigins: splitList(v.GetString(KeyCORSAllowedOrigins)),
		DBMaxOpenConns:     v.GetInt(KeyDBMaxOpenConns),
		DBMaxIdleConns:     v.GetInt(KeyDBMaxIdleConns),
		DBConnMaxLifetime:  v.GetDuration(KeyDBConnMaxLifetime),
		ReadTimeout:        v.GetDuration(KeyHTTPReadTimeout),
		WriteTimeout:       v.GetDuration(KeyHTTPWriteTimeout),
		IdleTimeout:        v.GetDuration(KeyHTTPIdleTimeout),
		ShutdownTimeout:    v.GetDuration(KeyShutdownTimeout),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.DatabaseURL == "" {
		problems = append(problems, "DATABASE_URL must be set")
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s'", c.LogFormat))
	}

	if c.DBMaxOpenConns < 1 {
		problems = append(problems, "DB_MAX_OPEN_CONNS must be at least 1")
	}

	if len(problems) > 0 {
		return errors.New("configuration errors: " + strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
