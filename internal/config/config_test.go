package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[app]
env = "development"
version = "1.2.3"

[server]
http_port = 8080
read_timeout = 5

[storage]
driver = "memory"

[database]
host = "db"
port = 5433
user = "bookit"
password = "secret"
dbname = "bookit"

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "bookit"

[cors]
allowed_origins = ["http://localhost:5173"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "APP_ENV", "STORAGE_DRIVER", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", sampleConfig)

	cfg, err := LoadWithEnvFile(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout, "default kept when key is absent")
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "host=db port=5433 user=bookit password=secret dbname=bookit sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://u:p@host:5432/bookit")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")

	path := writeFile(t, "config.toml", sampleConfig)

	cfg, err := LoadWithEnvFile(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "warn", cfg.Logs.Level)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://u:p@host:5432/bookit?sslmode=require", cfg.Database.DSN())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv не перезаписывает уже заданные переменные, поэтому PORT снимаем полностью
	require.NoError(t, os.Unsetenv("PORT"))
	t.Cleanup(func() { _ = os.Unsetenv("PORT") })

	path := writeFile(t, "config.toml", sampleConfig)
	envFile := writeFile(t, ".env", "PORT=7070\n")

	cfg, err := LoadWithEnvFile(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	missingEnv := filepath.Join(t.TempDir(), "missing.env")

	_, err := LoadWithEnvFile(filepath.Join(t.TempDir(), "nope.toml"), missingEnv)
	assert.Error(t, err)

	_, err = LoadWithEnvFile(writeFile(t, "bad.toml", "[server\n"), missingEnv)
	assert.Error(t, err)

	t.Setenv("PORT", "eighty")
	_, err = LoadWithEnvFile(writeFile(t, "config.toml", sampleConfig), missingEnv)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(c *Config) {}},
		{name: "bad port", modify: func(c *Config) { c.Server.HTTPPort = 70000 }, wantErr: true},
		{name: "unknown driver", modify: func(c *Config) { c.Storage.Driver = "redis" }, wantErr: true},
		{name: "postgres without database", modify: func(c *Config) {
			c.Storage.Driver = StoragePostgres
			c.Database.Host = ""
		}, wantErr: true},
		{name: "postgres with url", modify: func(c *Config) {
			c.Storage.Driver = StoragePostgres
			c.Database.Host = ""
			c.Database.URL = "postgres://localhost/bookit"
		}},
		{name: "relative metrics path", modify: func(c *Config) { c.Metrics.Path = "metrics" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, DefaultPath, PathFromEnv())

	t.Setenv("CONFIG_PATH", "/etc/bookit/config.toml")
	assert.Equal(t, "/etc/bookit/config.toml", PathFromEnv())
}
