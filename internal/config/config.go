package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StorageConfig holds object storage settings shared by the s3 and minio drivers.
type StorageConfig struct {
	// Driver selects the backend: "s3" (aws-sdk-go-v2) or "minio".
	Driver       string
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	UsePathStyle bool
	// PublicURL overrides the default https://<bucket>.s3.<region>.amazonaws.com base.
	PublicURL     string
	PresignTTLSec int
	CreateBucket  bool
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level    string
	Timezone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env            string
	Port           string
	MaxUploadBytes int
	Log            LogConfig
	Database       DatabaseConfig
	Storage        StorageConfig
}

// IsDevelopment reports whether APP_ENV selects development mode.
func (c *AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		Env:            getEnv("APP_ENV", "production"),
		Port:           getEnv("PORT", "8080"),
		MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", 10<<20),
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Timezone: getEnv("APP_TIMEZONE", "UTC"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getEnv("STORAGE_DRIVER", "s3")),
			Endpoint:      getEnv("STORAGE_ENDPOINT", ""),
			Region:        getEnv("STORAGE_REGION", "us-east-1"),
			Bucket:        getEnv("STORAGE_BUCKET", ""),
			AccessKey:     getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:     getEnv("STORAGE_SECRET_KEY", ""),
			UseSSL:        getEnvBool("STORAGE_USE_SSL", true),
			UsePathStyle:  getEnvBool("STORAGE_USE_PATH_STYLE", false),
			PublicURL:     getEnv("STORAGE_PUBLIC_URL", ""),
			PresignTTLSec: getEnvInt("STORAGE_PRESIGN_TTL_SEC", 900),
			CreateBucket:  getEnvBool("STORAGE_CREATE_BUCKET", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
