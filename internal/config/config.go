package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Queue  QueueConfig
	Fetch  FetchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds object storage settings for archived source files.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// QueueConfig holds import queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
}

// FetchConfig holds page fetcher settings.
type FetchConfig struct {
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
	UserAgent    string `mapstructure:"user_agent"`
}

// Load reads configuration from environment variables with the FORKFUL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FORKFUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "forkful")
	v.SetDefault("db.password", "forkful_secret")
	v.SetDefault("db.name", "forkful_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "forkful-imports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 5)
	v.SetDefault("queue.max_retries", 3)
	v.SetDefault("queue.concurrency", 4)

	// Fetch defaults
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_body_bytes", 10*1024*1024)
	v.SetDefault("fetch.user_agent", "forkful-importer/1.0")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "FORKFUL_SERVER_PORT",
		"server.read_timeout":      "FORKFUL_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "FORKFUL_SERVER_WRITE_TIMEOUT",
		"server.environment":       "FORKFUL_SERVER_ENVIRONMENT",
		"db.host":                  "FORKFUL_DB_HOST",
		"db.port":                  "FORKFUL_DB_PORT",
		"db.user":                  "FORKFUL_DB_USER",
		"db.password":              "FORKFUL_DB_PASSWORD",
		"db.name":                  "FORKFUL_DB_NAME",
		"db.sslmode":               "FORKFUL_DB_SSLMODE",
		"db.max_open":              "FORKFUL_DB_MAX_OPEN",
		"db.max_idle":              "FORKFUL_DB_MAX_IDLE",
		"s3.region":                "FORKFUL_S3_REGION",
		"s3.bucket":                "FORKFUL_S3_BUCKET",
		"s3.endpoint":              "FORKFUL_S3_ENDPOINT",
		"s3.access_key":            "FORKFUL_S3_ACCESS_KEY",
		"s3.secret_key":            "FORKFUL_S3_SECRET_KEY",
		"s3.max_file_size_mb":      "FORKFUL_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":        "FORKFUL_S3_PRESIGN_EXPIRY",
		"log.level":                "FORKFUL_LOG_LEVEL",
		"log.format":               "FORKFUL_LOG_FORMAT",
		"cors.allowed_origins":     "FORKFUL_CORS_ALLOWED_ORIGINS",
		"queue.poll_interval_secs": "FORKFUL_QUEUE_POLL_INTERVAL_SECS",
		"queue.max_retries":        "FORKFUL_QUEUE_MAX_RETRIES",
		"queue.concurrency":        "FORKFUL_QUEUE_CONCURRENCY",
		"fetch.timeout_secs":       "FORKFUL_FETCH_TIMEOUT_SECS",
		"fetch.max_body_bytes":     "FORKFUL_FETCH_MAX_BODY_BYTES",
		"fetch.user_agent":         "FORKFUL_FETCH_USER_AGENT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FORKFUL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FORKFUL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxRetries:       v.GetInt("queue.max_retries"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}
	cfg.Fetch = FetchConfig{
		TimeoutSecs:  v.GetInt("fetch.timeout_secs"),
		MaxBodyBytes: v.GetInt64("fetch.max_body_bytes"),
		UserAgent:    v.GetString("fetch.user_agent"),
	}

	return cfg, nil
}
