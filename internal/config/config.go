package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	SessionSecret string
	APIBaseURL    string

	AdminSeed AdminSeed
}

// AdminSeed carries the fixed values for the one-time admin account insert.
type AdminSeed struct {
	Name        string
	UserName    string
	Email       string
	Password    string
	PhoneNumber string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/eanmble?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me"),
		APIBaseURL:    normalizeBaseURL(getEnv("GHASTLY_API_URL", "https://ghastly-vault-37613.herokuapp.com/")),
		AdminSeed: AdminSeed{
			Name:        os.Getenv("EANMBLE_ADMIN_NAME"),
			UserName:    os.Getenv("EANMBLE_ADMIN_USER_NAME"),
			Email:       os.Getenv("EANMBLE_ADMIN_EMAIL"),
			Password:    os.Getenv("EANMBLE_ADMIN_PASSWORD"),
			PhoneNumber: os.Getenv("EANMBLE_ADMIN_PHONE_NUMBER"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

// normalizeBaseURL guarantees a single trailing slash so endpoint paths can be
// appended directly.
func normalizeBaseURL(u string) string {
	return strings.TrimRight(u, "/") + "/"
}
