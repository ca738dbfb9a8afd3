// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the process-level settings for the stayflow server.
type Config struct {
	HTTPAddr  string
	LogLevel  string
	LogFormat string
	Property  PropertySettings
}

// PropertySettings describes the hotel the server fronts, served read-only
// on the settings endpoint.
type PropertySettings struct {
	Name         string  `json:"property_name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime string  `json:"check_out_time"`
	Currency     string  `json:"currency"`
	TaxRate      float64 `json:"tax_rate"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		HTTPAddr:  envOr("STAYFLOW_HTTP_ADDR", ":8080"),
		LogLevel:  envOr("STAYFLOW_LOG_LEVEL", "info"),
		LogFormat: envOr("STAYFLOW_LOG_FORMAT", "json"),
		Property: PropertySettings{
			Name:         envOr("STAYFLOW_PROPERTY_NAME", "Grand Hotel & Resort"),
			Address:      envOr("STAYFLOW_PROPERTY_ADDRESS", "123 Luxury Avenue, Resort City, RC 12345"),
			Phone:        envOr("STAYFLOW_PROPERTY_PHONE", "+1 (555) 123-4567"),
			Email:        envOr("STAYFLOW_PROPERTY_EMAIL", "info@grandhotel.com"),
			CheckInTime:  envOr("STAYFLOW_CHECK_IN_TIME", "15:00"),
			CheckOutTime: envOr("STAYFLOW_CHECK_OUT_TIME", "11:00"),
			Currency:     envOr("STAYFLOW_CURRENCY", "USD"),
			TaxRate:      envFloatOr("STAYFLOW_TAX_RATE", 12.5),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envFloatOr falls back on unset or unparsable values.
func envFloatOr(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
