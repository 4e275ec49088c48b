package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"techtonic/routes"
)

// CatalogFile is the YAML layout of a route catalog:
//
//	routes:
//	  - source: Delhi
//	    destination: Nagpur
//	    distance_km: 1365
//	    modes:
//	      - mode: plane
//	        duration: 2 hours
//	        price: 3500
//	        availability: 8
//	        comfort_level: Standard
type CatalogFile struct {
	Routes []RouteEntry `yaml:"routes" validate:"required,min=1,dive"`
}

type RouteEntry struct {
	Source      string      `yaml:"source" validate:"required"`
	Destination string      `yaml:"destination" validate:"required"`
	DistanceKM  float64     `yaml:"distance_km" validate:"gt=0"`
	Modes       []ModeEntry `yaml:"modes" validate:"required,min=1,dive"`
}

type ModeEntry struct {
	Mode         string  `yaml:"mode" validate:"required"`
	Duration     string  `yaml:"duration" validate:"required"`
	Price        float64 `yaml:"price" validate:"gt=0"`
	Availability int     `yaml:"availability" validate:"gte=0"`
	ComfortLevel string  `yaml:"comfort_level"`
}

// LoadCatalog builds the route catalog from path, or the compiled-in catalog
// when path is empty.
func LoadCatalog(path string) (*routes.Catalog, error) {
	if path == "" {
		return routes.NewCatalog(routes.DefaultRoutes())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*routes.Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	v := validator.New()
	if err := v.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", routes.ErrInvalidCatalog, err)
	}

	facts := make([]routes.RouteFacts, 0, len(file.Routes))
	for _, r := range file.Routes {
		modes := make([]routes.ModeFacts, 0, len(r.Modes))
		for _, m := range r.Modes {
			modes = append(modes, routes.ModeFacts{
				Mode:         m.Mode,
				Duration:     m.Duration,
				Price:        m.Price,
				Availability: m.Availability,
				Comfort:      routes.ComfortLevel(m.ComfortLevel),
			})
		}
		facts = append(facts, routes.RouteFacts{
			Source:      r.Source,
			Destination: r.Destination,
			DistanceKM:  r.DistanceKM,
			Modes:       modes,
		})
	}

	return routes.NewCatalog(facts)
}
