package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           int
	DevMode        bool
	DataDir        string
	LogLevel       string
	IndexSymbol    string
	ReloadSchedule string
	BudgetWarnPct  float64
	BudgetDangerPct float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvAsInt("PORT", 8080),
		DevMode:         getEnvAsBool("DEV_MODE", false),
		DataDir:         getEnv("DATA_DIR", "./data"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		IndexSymbol:     getEnv("INDEX_SYMBOL", "^spx"),
		ReloadSchedule:  getEnv("RELOAD_SCHEDULE", "@every 15m"), // empty disables the reload job
		BudgetWarnPct:   getEnvAsFloat("BUDGET_WARN_PCT", 80),
		BudgetDangerPct: getEnvAsFloat("BUDGET_DANGER_PCT", 100),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.BudgetWarnPct <= 0 || c.BudgetDangerPct <= 0 {
		return fmt.Errorf("budget thresholds must be positive")
	}
	if c.BudgetWarnPct > c.BudgetDangerPct {
		return fmt.Errorf("BUDGET_WARN_PCT must not exceed BUDGET_DANGER_PCT")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
