package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "postgresql://wp:wp@postgres-service:5432/finance_tracker_db", cfg.DatabaseURL)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost", "http://localhost:3000", "http://finance.local"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 50, cfg.DBMaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/finance")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")

	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/finance", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 90*time.Second, cfg.DBConnMaxLifetime)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PORT", "http")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load(newViper())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 'http'")
	assert.Contains(t, err.Error(), "invalid log format 'xml'")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://x", Port: "70000", LogLevel: "info", LogFormat: "json", DBMaxOpenConns: 1}
	assert.EqualError(t, cfg.Validate(), "configuration errors: invalid port 70000: must be between 1 and 65535")
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FINANCE_DOTENV_MARKER=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FINANCE_DOTENV_MARKER") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("FINANCE_DOTENV_MARKER"))

	assert.Error(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadDotEnv_MissingFileDoesNotLog(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)

	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
