package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bepl-backend/internal/infrastructure/database"
)

// Config holds the whole application configuration.
// It is populated from environment variables (optionally loaded from .env).
type Config struct {
	App      AppConfig
	Database *database.DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Email    EmailConfig
	MinIO    MinIOConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
	FrontendURL string
	// OutboundTimeout bounds object storage uploads and SMTP. The server write
	// timeout is twice this so a streamed resume can finish.
	OutboundTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type EmailConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	From         string
	CompanyEmail string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL overrides the scheme://host part of stored object URLs.
	PublicURL string
}

type UploadConfig struct {
	MaxBytes      int64
	MaxFiles      int
	MaxImageWidth int
	RootFolder    string
}

type CORSConfig struct {
	AllowedOrigins []string
}

const defaultJWTSecret = "change-me-in-production"

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	dbCfg, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	emailUser := getEnv("EMAIL_USER", "")

	cfg := &Config{
		App: AppConfig{
			Name:            getEnv("APP_NAME", "BEPL API"),
			Environment:     getEnv("APP_ENV", "development"),
			Port:            getEnv("PORT", "5000"),
			Version:         getEnv("APP_VERSION", "1.0.0"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:8080"),
			OutboundTimeout: getEnvDuration("OUTBOUND_TIMEOUT", 30*time.Second),
		},
		Database: dbCfg,
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", defaultJWTSecret),
			Expiry: getEnvDuration("JWT_EXPIRY", 7*24*time.Hour),
		},
		Email: EmailConfig{
			Host:         getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:         getEnvInt("EMAIL_PORT", 587),
			User:         emailUser,
			Password:     getEnv("EMAIL_PASS", ""),
			From:         getEnv("EMAIL_FROM", emailUser),
			CompanyEmail: getEnv("COMPANY_EMAIL", emailUser),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "bepl"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			PublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		Upload: UploadConfig{
			MaxBytes:      int64(getEnvInt("UPLOAD_MAX_BYTES", 10<<20)),
			MaxFiles:      getEnvInt("UPLOAD_MAX_FILES", 10),
			MaxImageWidth: getEnvInt("UPLOAD_MAX_IMAGE_WIDTH", 2400),
			RootFolder:    getEnv("UPLOAD_ROOT_FOLDER", "bepl"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that must never fall back to defaults in production.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Email.User == "" {
			fmt.Println("WARNING: EMAIL_USER not set - notification emails will fail")
		}
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.App.OutboundTimeout <= 0 {
		return fmt.Errorf("OUTBOUND_TIMEOUT must be positive")
	}

	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
