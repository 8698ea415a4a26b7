// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"techhelp-dashboard/pkg/validation"
)

type ServerConfig struct {
	Port string `validate:"required,numeric"`
	Mode string `validate:"oneof=debug release"`
}

// SourceConfig tells the loader where the three dashboard documents live.
// BaseURL wins when both are set.
type SourceConfig struct {
	BaseURL string `validate:"omitempty,url"`
	Dir     string `validate:"required_without=BaseURL"`
}

type DashboardConfig struct {
	FetchTimeout time.Duration `validate:"gt=0"`
	DefaultTheme string        `validate:"theme"`
}

type LogConfig struct {
	File       string
	MaxSizeMB  int `validate:"gte=1"`
	MaxBackups int `validate:"gte=0"`
	MaxAgeDays int `validate:"gte=0"`
}

type RateLimitConfig struct {
	PerSecond float64 `validate:"gt=0"`
	Burst     int     `validate:"gte=1"`
}

type CORSConfig struct {
	AllowedOrigins []string
}

type Config struct {
	Server    ServerConfig
	Source    SourceConfig
	Dashboard DashboardConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Mode: getEnv("APP_MODE", "debug"),
		},
		Source: SourceConfig{
			BaseURL: getEnv("DASHBOARD_SOURCE_URL", ""),
			Dir:     getEnv("DASHBOARD_SOURCE_DIR", "./public"),
		},
		Dashboard: DashboardConfig{
			FetchTimeout: getEnvDuration("DASHBOARD_FETCH_TIMEOUT", 10*time.Second),
			DefaultTheme: getEnv("DASHBOARD_DEFAULT_THEME", "dark"),
		},
		Log: LogConfig{
			File:       getEnv("LOG_FILE", "./logs/app.log"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
		},
		RateLimit: RateLimitConfig{
			PerSecond: getEnvFloat("RATE_LIMIT_PER_SECOND", 20),
			Burst:     getEnvInt("RATE_LIMIT_BURST", 40),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
	}
}

// Validate checks the loaded values once at startup.
func (c *Config) Validate() error {
	return validation.NewEngine().Struct(c)
}

// UsesDirectory reports whether documents are read from disk rather than over HTTP.
func (c *Config) UsesDirectory() bool {
	return c.Source.BaseURL == ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Warning: %s=%q is not an integer, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %v", key, value, fallback)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Warning: %s=%q is not a duration, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
