package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string
		Port        string
		FrontendURL string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	Admin struct {
		Username string
		Password string
	}
	Session struct {
		Secret        string
		AdminTTLHours int
		PlayerTTLDays int
	}
	Cloudinary struct {
		CloudName string
		APIKey    string
		APISecret string
	}
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config struct.
// It's designed to be called once.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on system environment variables")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "clubhouse_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Admin credentials are never hardcoded; an empty username disables
	// the admin login entirely.
	cfg.Admin.Username = getEnv("ADMIN_USERNAME", "")
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", "")

	cfg.Session.Secret = getEnv("SESSION_SECRET", "dev-session-secret")

	var err error
	cfg.Session.AdminTTLHours, err = getEnvAsInt("SESSION_ADMIN_TTL_HOURS", 24)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_ADMIN_TTL_HOURS: %w", err)
	}
	cfg.Session.PlayerTTLDays, err = getEnvAsInt("SESSION_PLAYER_TTL_DAYS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_PLAYER_TTL_DAYS: %w", err)
	}

	cfg.Cloudinary.CloudName = getEnv("CLOUDINARY_CLOUD_NAME", "")
	cfg.Cloudinary.APIKey = getEnv("CLOUDINARY_API_KEY", "")
	cfg.Cloudinary.APISecret = getEnv("CLOUDINARY_API_SECRET", "")

	if cfg.Session.Secret == "dev-session-secret" && cfg.App.Env == "production" {
		log.Warn("Using default session secret in production. Set SESSION_SECRET.")
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Warn("ADMIN_USERNAME/ADMIN_PASSWORD not set, admin login is disabled")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectDB establishes a connection to the database using the provided
// configuration and sets the global DB variable.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Info("Connected to database", "name", cfg.DB.Name)
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		if _, err = ConnectDB(cfg); err != nil {
			loadErr = fmt.Errorf("failed to connect to database: %w", err)
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

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
