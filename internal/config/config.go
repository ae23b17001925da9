package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration. It is built once at startup
// and passed to components; nothing reads the environment at call time.
type Config struct {
	ServerPort   int
	DatabasePath string
	UploadDir    string // Base path for uploaded paper binaries

	JWTSecret string

	GeminiAPIKey string
	GeminiModel  string

	StripeAPIKey  string
	StripePriceID string
	SuccessURL    string
	CancelURL     string

	FrontendOrigin string

	// ProviderTimeout bounds every outbound call to the AI and payment providers.
	ProviderTimeout time.Duration

	// PremiumSweepSpec is the cron expression for the premium-expiry sweeper.
	PremiumSweepSpec string

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	timeoutStr := getEnv("PROVIDER_TIMEOUT", "60s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return &Config{
		ServerPort:       port,
		DatabasePath:     getEnv("DATABASE_PATH", "./paperdeck.db"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		JWTSecret:        jwtSecret,
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		StripeAPIKey:     os.Getenv("STRIPE_API_KEY"),
		StripePriceID:    os.Getenv("STRIPE_PRICE_ID"),
		SuccessURL:       getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:        getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/pricing"),
		FrontendOrigin:   getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		ProviderTimeout:  timeout,
		PremiumSweepSpec: getEnv("PREMIUM_SWEEP_SPEC", "@hourly"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
