package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	Team struct {
		Abbreviation string `env:"TEAM_ABBREVIATION" envDefault:"MIN"`
		Name         string `env:"TEAM_NAME"         envDefault:"Minnesota Timberwolves"`
		TablePrefix  string `env:"TEAM_TABLE_PREFIX" envDefault:"timberwolves"`
	}
	Lineups struct {
		MinMinutes int `env:"LINEUP_MIN_MINUTES" envDefault:"50"`
		Limit      int `env:"LINEUP_LIMIT"       envDefault:"3"`
	}
	DB struct {
		Driver   string `env:"DB_DRIVER"    envDefault:"postgres"`
		URL      string `env:"DATABASE_URL"`
		Path     string `env:"DB_PATH"      envDefault:"./dashboard.db"`
		Host     string `env:"DB_HOST"      envDefault:"localhost"`
		Port     string `env:"DB_PORT"      envDefault:"5432"`
		User     string `env:"DB_USER"      envDefault:"postgres"`
		Password string `env:"DB_PASSWORD"  envDefault:"password"`
		Name     string `env:"DB_NAME"      envDefault:"postgres"`
		SSLMode  string `env:"DB_SSLMODE"   envDefault:"require"`
	}
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

// Global AppConfig instance, accessible after LoadConfig() is called via Initialize.
var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		logger.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// --- Team Configuration ---
	cfg.Team.Abbreviation = getEnv("TEAM_ABBREVIATION", "MIN")
	cfg.Team.Name = getEnv("TEAM_NAME", "Minnesota Timberwolves")
	cfg.Team.TablePrefix = getEnv("TEAM_TABLE_PREFIX", "timberwolves")

	// --- Lineup Configuration ---
	var err error
	cfg.Lineups.MinMinutes, err = getEnvAsInt("LINEUP_MIN_MINUTES", 50)
	if err != nil {
		return nil, fmt.Errorf("invalid LINEUP_MIN_MINUTES: %w", err)
	}
	cfg.Lineups.Limit, err = getEnvAsInt("LINEUP_LIMIT", 3)
	if err != nil {
		return nil, fmt.Errorf("invalid LINEUP_LIMIT: %w", err)
	}

	// --- Database Configuration ---
	cfg.DB.Driver = getEnv("DB_DRIVER", DriverPostgres)
	cfg.DB.URL = getEnv("DATABASE_URL", "")
	cfg.DB.Path = getEnv("DB_PATH", "./dashboard.db")
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "postgres")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "require")

	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverSQLite {
		return nil, fmt.Errorf("invalid DB_DRIVER %q: expected %q or %q", cfg.DB.Driver, DriverPostgres, DriverSQLite)
	}
	if cfg.DB.Driver == DriverPostgres && cfg.DB.URL == "" && cfg.DB.Password == "password" && cfg.App.Env == "production" {
		logger.Errorln("WARNING: Using default DB password in production. Please set DATABASE_URL or DB_PASSWORD.")
	}

	appConfig = cfg
	return cfg, nil
}

// DSN builds the postgres connection string. DATABASE_URL wins when set.
func (c *Config) DSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
	)
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	var dialector gorm.Dialector
	switch dbCfg.DB.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(dbCfg.DB.Path)
	default:
		dialector = postgres.Open(dbCfg.DSN())
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	logger.Printf("Successfully connected to %s database!", dbCfg.DB.Driver)
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		_, err = ConnectDB(*appConfig)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It exits if the configuration has not been loaded yet.
func GetConfig() *Config {
	if appConfig == nil {
		logger.Fatalf("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
