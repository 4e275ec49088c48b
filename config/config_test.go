package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"techtonic/routes"
)

const sampleCatalog = `
routes:
  - source: Pune
    destination: Goa
    distance_km: 450
    modes:
      - mode: bus
        duration: 10 hours
        price: 900
        availability: 9
        comfort_level: Budget
      - mode: plane
        duration: 1 hour
        price: 4000
        availability: 2
        comfort_level: Premium
  - source: Chennai
    destination: Madurai
    distance_km: 460
    modes:
      - mode: train
        duration: 7 hours 30 min
        price: 600
        availability: 5
        comfort_level: Standard
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Errorf("got %d routes, want 2", c.Len())
	}

	r, err := c.Lookup("goa", "PUNE")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Modes) != 2 || r.Modes[1].Comfort != routes.ComfortPremium {
		t.Errorf("unexpected modes %+v", r.Modes)
	}

	if got := c.ListRoutes()[0].Source; got != "Chennai" {
		t.Errorf("first listed source = %s, want Chennai", got)
	}
}

func TestParseCatalogValidation(t *testing.T) {
	tests := map[string]string{
		"empty":          "routes: []",
		"zero price":     "routes:\n  - {source: a, destination: b, distance_km: 1, modes: [{mode: bus, duration: 1 hour, price: 0}]}",
		"no distance":    "routes:\n  - {source: a, destination: b, modes: [{mode: bus, duration: 1 hour, price: 5}]}",
		"no modes":       "routes:\n  - {source: a, destination: b, distance_km: 3}",
		"negative avail": "routes:\n  - {source: a, destination: b, distance_km: 1, modes: [{mode: bus, duration: 1 hour, price: 5, availability: -2}]}",
		"duplicate pair": "routes:\n  - {source: a, destination: b, distance_km: 1, modes: [{mode: bus, duration: 1 hour, price: 5}]}\n  - {source: b, destination: a, distance_km: 1, modes: [{mode: bus, duration: 1 hour, price: 5}]}",
	}

	for name, doc := range tests {
		if _, err := ParseCatalog([]byte(doc)); !errors.Is(err, routes.ErrInvalidCatalog) {
			t.Errorf("%s: got %v, want ErrInvalidCatalog", name, err)
		}
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Errorf("got %d routes, want 2", c.Len())
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadCatalogDefault(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 3 {
		t.Errorf("got %d routes, want 3", c.Len())
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_URL", "https://a.example, ,https://b.example")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "travel")
	t.Setenv("AMADEUS_CLIENT_ID", "")
	t.Setenv("AMADEUS_KEY", "key")
	t.Setenv("AMADEUS_BASE_URL", "")
	t.Setenv("AMADEUS_ENV", "production")
	t.Setenv("METRICS_ENABLED", "off")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %s", cfg.Port)
	}
	if len(cfg.FrontendURLs) != 4 || cfg.FrontendURLs[3] != "https://b.example" {
		t.Errorf("FrontendURLs = %v", cfg.FrontendURLs)
	}
	want := "host=db port=5432 user=postgres password=postgres dbname=travel sslmode=disable"
	if cfg.DatabaseDSN != want {
		t.Errorf("DatabaseDSN = %q, want %q", cfg.DatabaseDSN, want)
	}
	if cfg.AmadeusClientID != "key" {
		t.Errorf("AmadeusClientID = %q, want alias value", cfg.AmadeusClientID)
	}
	if cfg.AmadeusBaseURL != "https://api.amadeus.com" {
		t.Errorf("AmadeusBaseURL = %q", cfg.AmadeusBaseURL)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}
}

func TestLoadDatabaseDisabled(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseDSN != "" {
		t.Errorf("DatabaseDSN = %q, want empty", cfg.DatabaseDSN)
	}
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "sometimes")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid METRICS_ENABLED")
	}
}
