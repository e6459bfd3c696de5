package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go-cuti/internal/employee"
	"go-cuti/internal/leavehistory"
	"go-cuti/internal/shared/connection"

	"go.uber.org/zap"
)

type Config struct {
	Port           string
	DB             connection.DBConfig
	RedisAddr      string
	CacheTTL       time.Duration
	JWTSecret      string
	ElevatedRoles  []string
	KafkaBroker    string
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig reads the environment. Invalid numbers and durations fall back
// to their defaults with a warning.
func LoadConfig() Config {
	return Config{
		Port: getEnv("PORT", "3000"),
		DB: connection.DBConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     os.Getenv("DB_PORT"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		CacheTTL:       getDuration("LEAVE_HISTORY_CACHE_TTL", leavehistory.DefaultSnapshotTTL),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ElevatedRoles:  getList("ELEVATED_ROLES", []string{employee.RoleHRD}),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		zap.L().Warn("invalid duration, using default", zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		zap.L().Warn("invalid integer, using default", zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		zap.L().Warn("invalid number, using default", zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return f
}

// getList splits a comma separated value, dropping blanks.
func getList(key string, fallback []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
