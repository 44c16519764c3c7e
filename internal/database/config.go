package database

import (
	"fmt"

	"appraisal/internal/config"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver         string `env:"DB_DRIVER" envDefault:"postgres"`
	Host           string `env:"DB_HOST" envDefault:"localhost"`
	Port           string `env:"DB_PORT" envDefault:"5432"`
	User           string `env:"DB_USER" envDefault:"appraisal"`
	Password       string `env:"DB_PASSWORD" envDefault:"appraisal"`
	DBName         string `env:"DB_NAME" envDefault:"appraisal"`
	SSLMode        string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"appraisal.db"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	config.LoadDotEnv()

	cfg := &Config{}
	if err := config.ParseEnv(cfg); err != nil {
		return nil, err
	}
	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", cfg.Driver, DriverPostgres, DriverSQLite)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the database URL golang-migrate expects.
func (c *Config) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// SourceURL returns the migrations source URL.
func (c *Config) SourceURL() string {
	return "file://" + c.MigrationsPath
}
