package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Seed     SeedConfig
	Admin    AdminConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Driver          string // "sqlite" or "postgres"
	Path            string // sqlite database file
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type SeedConfig struct {
	DemoUserEmail string
	// Promote selects which users become professionals: "all" or "even"
	// (users with an even id only).
	Promote string
	// Verification is the status written for promoted professionals:
	// "approved" or "pending".
	Verification string
}

type AdminConfig struct {
	// Enabled gates the fixed administrative account. Off by default and
	// refused outright when Server.Env is "production".
	Enabled  bool
	Email    string
	Password string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine; environment variables alone may carry
		// the whole configuration.
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Driver:          viper.GetString("DB_DRIVER"),
			Path:            viper.GetString("DB_PATH"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Seed: SeedConfig{
			DemoUserEmail: viper.GetString("SEED_DEMO_USER_EMAIL"),
			Promote:       viper.GetString("SEED_PROMOTE"),
			Verification:  viper.GetString("SEED_VERIFICATION"),
		},
		Admin: AdminConfig{
			Enabled:  viper.GetBool("ADMIN_BOOTSTRAP_ENABLED"),
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "marketplace.db"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Seed.DemoUserEmail == "" {
		cfg.Seed.DemoUserEmail = "demo@example.com"
	}
	if cfg.Seed.Promote == "" {
		cfg.Seed.Promote = "all"
	}
	if cfg.Seed.Verification == "" {
		cfg.Seed.Verification = "approved"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Seed.Promote {
	case "all", "even":
	default:
		return fmt.Errorf("unsupported SEED_PROMOTE %q", c.Seed.Promote)
	}
	switch c.Seed.Verification {
	case "approved", "pending":
	default:
		return fmt.Errorf("unsupported SEED_VERIFICATION %q", c.Seed.Verification)
	}
	if c.Admin.Enabled && (c.Admin.Email == "" || c.Admin.Password == "") {
		return fmt.Errorf("ADMIN_BOOTSTRAP_ENABLED requires ADMIN_EMAIL and ADMIN_PASSWORD")
	}
	return nil
}

// AdminAllowed reports whether the administrative account may be
// provisioned: the flag must be set explicitly, and production is
// always refused.
func (c *Config) AdminAllowed() bool {
	return c.Admin.Enabled && c.Server.Env != "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == "sqlite" {
		return c.Database.Path
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}
