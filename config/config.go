package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	GinMode      string
	FrontendURLs []string

	// CatalogFile is an optional YAML route catalog. Empty means the
	// compiled-in routes.
	CatalogFile string

	// DatabaseDSN is empty when the search log is disabled.
	DatabaseDSN string

	AmadeusClientID     string
	AmadeusClientSecret string
	AmadeusBaseURL      string

	HFAPIKey  string
	HFModel   string
	HFBaseURL string

	MetricsEnabled bool
}

var defaultOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// Load reads configuration from the environment, loading .env first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		CatalogFile: strings.TrimSpace(os.Getenv("ROUTE_CATALOG_FILE")),
		DatabaseDSN: buildDSN(),

		AmadeusClientID:     firstNonEmpty(os.Getenv("AMADEUS_CLIENT_ID"), os.Getenv("AMADEUS_KEY")),
		AmadeusClientSecret: firstNonEmpty(os.Getenv("AMADEUS_CLIENT_SECRET"), os.Getenv("SECRET")),
		AmadeusBaseURL:      amadeusBaseURL(),

		HFAPIKey:  os.Getenv("HUGGINGFACE_API_KEY"),
		HFModel:   getEnv("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.3"),
		HFBaseURL: strings.TrimRight(getEnv("HF_BASE_URL", "https://api-inference.huggingface.co"), "/"),
	}

	cfg.FrontendURLs = append([]string(nil), defaultOrigins...)
	for _, u := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			cfg.FrontendURLs = append(cfg.FrontendURLs, u)
		}
	}

	metrics, err := parseBool("METRICS_ENABLED", true)
	if err != nil {
		return nil, err
	}
	cfg.MetricsEnabled = metrics

	return cfg, nil
}

// buildDSN returns DATABASE_URL, or a DSN from the DB_* variables when DB_HOST
// is set, or "" to disable the search log.
func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASSWORD", "postgres")
	name := getEnv("DB_NAME", "techtonic")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

func amadeusBaseURL() string {
	if u := os.Getenv("AMADEUS_BASE_URL"); u != "" {
		return strings.TrimRight(u, "/")
	}
	if env := os.Getenv("AMADEUS_ENV"); env == "production" || env == "prod" {
		return "https://api.amadeus.com"
	}
	return "https://test.api.amadeus.com"
}

func parseBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	switch strings.ToLower(v) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid %s: %q", key, v)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
