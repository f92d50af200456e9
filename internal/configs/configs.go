package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DBHost                 string
	DBName                 string
	DBUser                 string
	DBPassword             string
	DBPort                 string
	SqliteDSN              string
	RateLimit              int
	RedisAddr              string
	ReportCacheTTLSeconds  int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "0.0.0.0")
	appPort := getEnv("PORT", "5000")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DBHost:                 getEnv("DB_HOST", ""),
		DBName:                 getEnv("DB_NAME", "tasktracker"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", "postgres"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		SqliteDSN:              getEnv("DATABASE_DSN", "tasktracker.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		ReportCacheTTLSeconds:  getEnvAsInt("REPORT_CACHE_TTL_SECONDS", 30),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

// PostgresDSN reports whether a postgres host is configured, and the DSN to
// reach it. With no DB_HOST the service falls back to the sqlite file.
func (c Config) PostgresDSN() (string, bool) {
	if c.DBHost == "" {
		return "", false
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
	return dsn, true
}

func validate(cfg Config) {
	if cfg.DBHost == "" && cfg.SqliteDSN == "" {
		log.Fatal("either DB_HOST or DATABASE_DSN must be set")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ReportCacheTTLSeconds <= 0 {
		log.Fatal("REPORT_CACHE_TTL_SECONDS must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
