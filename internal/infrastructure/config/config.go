package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Gemini question generation and tutoring
	GeminiAPIKey string
	GeminiModel  string // e.g. "gemini-2.5-flash"

	// Access gate
	AccessPassword   string
	MaxLoginAttempts int
	LockoutDuration  time.Duration

	DBPath string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:    mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:  mustGetDuration("SHUTDOWN_TIMEOUT"),
		GeminiAPIKey:     mustGetenv("GEMINI_API_KEY"),
		GeminiModel:      getenvDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		AccessPassword:   mustGetenv("ACCESS_PASSWORD"),
		MaxLoginAttempts: getenvDefaultInt("MAX_LOGIN_ATTEMPTS", 10),
		LockoutDuration:  getenvDefaultDuration("LOCKOUT_DURATION", 60*time.Second),
		DBPath:           getenvDefault("DB_PATH", "estudai.db"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvDefaultInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}

func getenvDefaultDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
