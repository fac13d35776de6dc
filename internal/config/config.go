package config

import (
	"os"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr  string
	RedisAddr string
	RedisPass string

	// JWT
	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	// Fixed admin account. A real credential backend would replace the
	// static verifier; see internal/service/auth.
	AdminUsername string
	AdminPassword string
	LoginDelay    time.Duration

	// Session
	SessionKey string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8000"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		JWTSecret: getEnv("JWT_SECRET", "jeyamcars-dev-secret"),
		JWTIssuer: getEnv("JWT_ISSUER", "jeyamcars"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password"),
		LoginDelay:    getEnvDuration("LOGIN_DELAY", time.Second),

		SessionKey: getEnv("SESSION_KEY", "jeyamcars:auth:session"),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
