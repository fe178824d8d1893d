package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	Port      string `envconfig:"APP_PORT" default:"8082"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	OriginURL string `envconfig:"ORIGIN_URL"`

	StorageDriver    string `envconfig:"STORAGE_DRIVER" default:"memory"`
	StorageNamespace string `envconfig:"STORAGE_NAMESPACE"`
	SQLitePath       string `envconfig:"SQLITE_PATH" default:"./data/storefront.db"`

	RedisURL      string `envconfig:"REDIS_URL"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	DatabaseURL   string `envconfig:"DATABASE_URL"`
	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName        string `envconfig:"DB_NAME" default:"aliccedress"`
	DBSSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"database/migration"`

	PasswordScheme string `envconfig:"PASSWORD_SCHEME" default:"plain"`
	SeedName       string `envconfig:"SEED_NAME" default:"Тестовый пользователь"`
	SeedEmail      string `envconfig:"SEED_EMAIL" default:"test@example.com"`
	SeedPhone      string `envconfig:"SEED_PHONE" default:"+7 (999) 123-45-67"`
	SeedPassword   string `envconfig:"SEED_PASSWORD" default:"password123"`

	ReceiptSecret string        `envconfig:"RECEIPT_SECRET"`
	ReceiptExpiry time.Duration `envconfig:"RECEIPT_EXPIRY" default:"720h"`

	SMTPHost string `envconfig:"SMTP_HOST"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER"`
	SMTPPass string `envconfig:"SMTP_PASS"`
	SMTPFrom string `envconfig:"SMTP_FROM" default:"shop@aliccedress.local"`

	CloudinaryURL       string `envconfig:"CLOUDINARY_URL"`
	CloudinaryCloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `envconfig:"CLOUDINARY_API_SECRET"`
	UploadDir           string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	MaxUploadSize       int64  `envconfig:"MAX_UPLOAD_SIZE" default:"5242880"`
}

var AppConfig *Config

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Load reads the process environment into a Config without touching .env.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite, StorageRedis, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	return &cfg, nil
}

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	AppConfig = cfg

	log.Info().
		Str("env", cfg.AppEnv).
		Str("port", cfg.Port).
		Str("storage", cfg.StorageDriver).
		Msg("configuration loaded")
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func (c *Config) CloudinaryEnabled() bool {
	if c.CloudinaryURL != "" {
		return true
	}
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// PostgresDSN prefers DATABASE_URL and falls back to the individual DB_* values.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
