package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBusinessName  = "ADILSON CAFÉ & COMPANHIA LTDA"
	DefaultBusinessPhone = "33 8763-1216"
	DefaultDisclaimer    = "ATENÇÃO: Esta guia não possui valor fiscal ou legal. Ela é apenas informativa e contém os pesos dos produtos para conferência do cliente."
)

// Business is the fixed footer printed on every receipt.
type Business struct {
	Name       string
	Phone      string
	Disclaimer string
}

// Config is the process configuration.
type Config struct {
	Addr      string
	SaveDir   string
	ExportTTL time.Duration
	Business  Business
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		slog.Warn("load env file failed", slog.Any("err", err))
	}

	ttl, err := time.ParseDuration(getenv("PESAGEM_EXPORT_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PESAGEM_EXPORT_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("PESAGEM_EXPORT_TTL must be positive, got %s", ttl)
	}

	return Config{
		Addr:      getenv("APP_ADDR", "127.0.0.1:8080"),
		SaveDir:   os.Getenv("PESAGEM_SAVE_DIR"),
		ExportTTL: ttl,
		Business: Business{
			Name:       getenv("PESAGEM_BUSINESS_NAME", DefaultBusinessName),
			Phone:      getenv("PESAGEM_BUSINESS_PHONE", DefaultBusinessPhone),
			Disclaimer: getenv("PESAGEM_DISCLAIMER", DefaultDisclaimer),
		},
	}, nil
}

// DefaultBusiness returns the footer used when nothing is configured.
func DefaultBusiness() Business {
	return Business{Name: DefaultBusinessName, Phone: DefaultBusinessPhone, Disclaimer: DefaultDisclaimer}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
