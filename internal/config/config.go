package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB        DBConfig
	Clock     ClockConfig
	LoginItem LoginItemConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeSQLite     DBType = "sqlite"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ClockConfig holds settings for the display refresh loop
type ClockConfig struct {
	TickInterval int // seconds
}

// LoginItemConfig holds settings for the login-item registrar
type LoginItemConfig struct {
	AgentDir string
	Label    string
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	switch c.Type {
	case DBTypeMemory:
		// SQLite in-memory database
		return "file::memory:?cache=shared"
	case DBTypeSQLite:
		return fmt.Sprintf("file:%s?_fk=on", c.Path)
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsSQLite returns true for the file and in-memory SQLite variants
func (c DBConfig) IsSQLite() bool {
	return c.Type == DBTypeSQLite || c.Type == DBTypeMemory
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "sqlite"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeSQLite
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Path:     getEnv("DB_PATH", defaultDBPath()),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "worldclock"),
			Password: getEnv("DB_PASSWORD", "worldclock_password"),
			Name:     getEnv("DB_NAME", "worldclock"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Clock: ClockConfig{
			TickInterval: getEnvAsInt("TICK_INTERVAL_SECONDS", 1),
		},
		LoginItem: LoginItemConfig{
			AgentDir: getEnv("LAUNCH_AGENT_DIR", defaultAgentDir()),
			Label:    getEnv("LAUNCH_AGENT_LABEL", "com.rajshahuk.worldclock"),
		},
	}

	return config, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "worldclock.db"
	}
	return filepath.Join(home, ".worldclock", "worldclock.db")
}

func defaultAgentDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "LaunchAgents"
	}
	return filepath.Join(home, "Library", "LaunchAgents")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
