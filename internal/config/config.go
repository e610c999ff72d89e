// Package config loads the application configuration from a YAML file with
// environment overrides for deployment secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/storage"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"gte=0,lte=65535"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret string        `yaml:"secret" validate:"required,min=16"`
	Expiry time.Duration `yaml:"expiry"`
}

// AdminConfig holds the shared admin secret.
type AdminConfig struct {
	Password string `yaml:"password" validate:"required,min=8"`
}

// UploadConfig selects where evidence uploads are stored.
type UploadConfig struct {
	Dir     string           `yaml:"dir"`
	MaxSize int64            `yaml:"max_size"`
	S3      storage.S3Config `yaml:"s3"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig `yaml:"server"`
	Database struct {
		DSN string `yaml:"dsn" validate:"required"`
	} `yaml:"database"`
	JWT    JWTConfig    `yaml:"jwt"`
	Admin  AdminConfig  `yaml:"admin"`
	Upload UploadConfig `yaml:"upload"`
	Log    LogConfig    `yaml:"log"`
}

// Default values applied before loading.
const (
	defaultPort       = 3000
	defaultExpiry     = 24 * time.Hour
	defaultUploadDir  = "uploads"
	defaultMaxUpload  = 10 << 20
	defaultLogLevel   = "info"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

func defaults() Config {
	var cfg Config
	cfg.Server.Port = defaultPort
	cfg.JWT.Expiry = defaultExpiry
	cfg.Upload.Dir = defaultUploadDir
	cfg.Upload.MaxSize = defaultMaxUpload
	cfg.Log.Level = defaultLogLevel
	cfg.Log.MaxSizeMB = defaultMaxSizeMB
	cfg.Log.MaxBackups = defaultMaxBackups
	cfg.Log.MaxAgeDays = defaultMaxAgeDays
	return cfg
}

// Load reads the YAML file at path, applies env overrides and validates the
// result. A missing file is fine when the env provides everything required.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, errRead := os.ReadFile(path)
		if errRead != nil && !os.IsNotExist(errRead) {
			return cfg, fmt.Errorf("config: read %s: %w", path, errRead)
		}
		if errRead == nil {
			if errYAML := yaml.Unmarshal(data, &cfg); errYAML != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, errYAML)
			}
		}
	}

	applyEnv(&cfg)

	if errValidate := validator.New().Struct(&cfg); errValidate != nil {
		return cfg, fmt.Errorf("config: validate: %w", errValidate)
	}
	return cfg, nil
}

// applyEnv overrides file values with deployment environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
