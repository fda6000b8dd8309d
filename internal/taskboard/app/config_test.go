package app

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"TASKBOARD_JWT_SECRET", "TASKBOARD_STORE_DRIVER", "TASKBOARD_STORE_TIMEOUT",
		"TASKBOARD_CORS_ORIGIN", "TASKBOARD_SHARED_READ", "PORT", "ENV",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, DriverSQLite, cfg.StoreDriver)
	require.Equal(t, 5*time.Second, cfg.StoreTimeout)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "dev", cfg.Env)
	require.False(t, cfg.SharedRead)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TASKBOARD_STORE_DRIVER", "Postgres")
	t.Setenv("TASKBOARD_DATABASE_URL", "postgres://u:p@db/taskboard")
	t.Setenv("TASKBOARD_STORE_TIMEOUT", "90")
	t.Setenv("TASKBOARD_SHARED_READ", "true")
	t.Setenv("TASKBOARD_CORS_ORIGIN", "https://a.example, https://b.example,")
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, DriverPostgres, cfg.StoreDriver)
	require.Equal(t, 90*time.Minute, cfg.StoreTimeout)
	require.True(t, cfg.SharedRead)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	require.Equal(t, 8080, cfg.Port)
}

func validConfig() Config {
	return Config{
		JWTSecret:    strings.Repeat("s", jwtx.MinSecretLength),
		StoreDriver:  DriverSQLite,
		DatabaseFile: "taskboard.db",
		StoreTimeout: time.Second,
		Env:          "prod",
		Port:         8080,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"secret required outside dev", func(c *Config) { c.JWTSecret = "" }, "TASKBOARD_JWT_SECRET is required"},
		{"secret optional in dev", func(c *Config) { c.JWTSecret = ""; c.Env = "dev" }, ""},
		{"weak secret", func(c *Config) { c.JWTSecret = "short" }, "at least 32 bytes"},
		{"postgres needs url", func(c *Config) { c.StoreDriver = DriverPostgres }, "TASKBOARD_DATABASE_URL"},
		{"unknown driver", func(c *Config) { c.StoreDriver = "mongo" }, `unknown TASKBOARD_STORE_DRIVER "mongo"`},
		{"zero store timeout", func(c *Config) { c.StoreTimeout = 0 }, "TASKBOARD_STORE_TIMEOUT"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "PORT 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	cfg.StoreTimeout = 0

	err := cfg.Validate()
	require.ErrorContains(t, err, "TASKBOARD_JWT_SECRET")
	require.ErrorContains(t, err, "TASKBOARD_STORE_TIMEOUT")
}
