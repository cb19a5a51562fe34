package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

type Config struct {
	DB_USERNAME string
	DB_PASSWORD string
	DB_HOST     string
	DB_PORT     string
	DB_NAME     string
	DISABLE_TLS string

	JWT_SECRET     string
	ALLOWED_ORIGIN string
	PORT           string
}

func ReadConfig() *Config {
	return &Config{
		DB_USERNAME: os.Getenv("DB_USERNAME"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_NAME:     os.Getenv("DB_NAME"),
		DISABLE_TLS: os.Getenv("DISABLE_TLS"),

		JWT_SECRET:     os.Getenv("JWT_SECRET"),
		ALLOWED_ORIGIN: os.Getenv("ALLOWED_ORIGIN"),
		PORT:           GetEnvOrDefault("PORT", "5001"),
	}
}

// Validate reports every required setting that is missing so startup can
// fail once with the full list instead of one key at a time.
func (c *Config) Validate() error {
	var missing []string

	required := map[string]string{
		"DB_USERNAME":    c.DB_USERNAME,
		"DB_HOST":        c.DB_HOST,
		"DB_PORT":        c.DB_PORT,
		"DB_NAME":        c.DB_NAME,
		"JWT_SECRET":     c.JWT_SECRET,
		"ALLOWED_ORIGIN": c.ALLOWED_ORIGIN,
	}
	for key, val := range required {
		if val == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
