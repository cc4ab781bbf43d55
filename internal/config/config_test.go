package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "marketplace.db", cfg.Database.Path)
	assert.Equal(t, "demo@example.com", cfg.Seed.DemoUserEmail)
	assert.Equal(t, "all", cfg.Seed.Promote)
	assert.Equal(t, "approved", cfg.Seed.Verification)
	assert.False(t, cfg.Admin.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "seeder")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "marketplace")
	t.Setenv("SEED_PROMOTE", "even")
	t.Setenv("SEED_VERIFICATION", "pending")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "even", cfg.Seed.Promote)
	assert.Equal(t, "pending", cfg.Seed.Verification)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown promote variant", func(t *testing.T) {
		t.Setenv("SEED_PROMOTE", "odd")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown verification variant", func(t *testing.T) {
		t.Setenv("SEED_VERIFICATION", "rejected")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("admin enabled without credentials", func(t *testing.T) {
		t.Setenv("ADMIN_BOOTSTRAP_ENABLED", "true")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestAdminAllowed(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Env: "development"},
		Admin:  AdminConfig{Enabled: true},
	}
	assert.True(t, cfg.AdminAllowed())

	cfg.Server.Env = "production"
	assert.False(t, cfg.AdminAllowed())

	cfg.Server.Env = "development"
	cfg.Admin.Enabled = false
	assert.False(t, cfg.AdminAllowed())
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: "sqlite", Path: "demo.db"},
	}
	assert.Equal(t, "demo.db", cfg.GetDatabaseDSN())

	cfg.Database = DatabaseConfig{
		Driver:   "postgres",
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		DBName:   "marketplace",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=marketplace sslmode=disable",
		cfg.GetDatabaseDSN(),
	)
}

func TestGetServerAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "127.0.0.1", Port: 9090}}
	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
}
