package routes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrRouteNotFound is returned when neither ordering of a pair is catalogued.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidCatalog is returned by NewCatalog when route data breaks a catalog rule.
	ErrInvalidCatalog = errors.New("invalid route catalog")
)

// ComfortLevel is an ordered comfort tier. Unknown labels are allowed and rank lowest.
type ComfortLevel string

const (
	ComfortBudget   ComfortLevel = "Budget"
	ComfortStandard ComfortLevel = "Standard"
	ComfortPremium  ComfortLevel = "Premium"
)

// Rank orders comfort levels: Budget=1 < Standard=2 < Premium=3, anything else 0.
func (c ComfortLevel) Rank() int {
	switch c {
	case ComfortPremium:
		return 3
	case ComfortStandard:
		return 2
	case ComfortBudget:
		return 1
	}
	return 0
}

// ModeFacts describes one transport mode on a route.
type ModeFacts struct {
	Mode         string       `json:"mode"`
	Duration     string       `json:"duration"`
	Price        float64      `json:"price"`
	Availability int          `json:"availability"`
	Comfort      ComfortLevel `json:"comfort_level"`
}

// RouteFacts is a catalogued route. Modes keep catalog order, which is the
// tie-break order for best-option selection.
type RouteFacts struct {
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	DistanceKM  float64     `json:"distance_km"`
	Modes       []ModeFacts `json:"modes"`
}

// RouteSummary is one entry of the catalog listing.
type RouteSummary struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	DistanceKM  float64 `json:"distance_km"`
}

// RouteKey identifies an unordered pair of normalized locations.
type RouteKey struct {
	a, b string
}

// NewRouteKey normalizes both locations and orders them so that
// NewRouteKey(x, y) == NewRouteKey(y, x).
func NewRouteKey(source, destination string) RouteKey {
	a, b := NormalizeLocation(source), NormalizeLocation(destination)
	if b < a {
		a, b = b, a
	}
	return RouteKey{a: a, b: b}
}

// NormalizeLocation case-folds and trims a location name.
func NormalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// Catalog is an immutable set of known routes. It is safe for concurrent use.
type Catalog struct {
	routes  map[RouteKey]*RouteFacts
	listing []RouteSummary
}

// NewCatalog builds a catalog from the given routes. The input is copied.
func NewCatalog(routes []RouteFacts) (*Catalog, error) {
	c := &Catalog{
		routes:  make(map[RouteKey]*RouteFacts, len(routes)),
		listing: make([]RouteSummary, 0, len(routes)),
	}

	for i := range routes {
		r := routes[i]
		if err := checkRoute(r); err != nil {
			return nil, err
		}

		key := NewRouteKey(r.Source, r.Destination)
		if _, dup := c.routes[key]; dup {
			return nil, fmt.Errorf("%w: duplicate route %s-%s", ErrInvalidCatalog, r.Source, r.Destination)
		}

		r.Modes = append([]ModeFacts(nil), r.Modes...)
		c.routes[key] = &r
		c.listing = append(c.listing, RouteSummary{
			Source:      displayName(r.Source),
			Destination: displayName(r.Destination),
			DistanceKM:  r.DistanceKM,
		})
	}

	sort.SliceStable(c.listing, func(i, j int) bool {
		return c.listing[i].Source < c.listing[j].Source
	})

	return c, nil
}

func checkRoute(r RouteFacts) error {
	name := r.Source + "-" + r.Destination
	if NormalizeLocation(r.Source) == "" || NormalizeLocation(r.Destination) == "" {
		return fmt.Errorf("%w: route %q needs a source and destination", ErrInvalidCatalog, name)
	}
	if r.DistanceKM <= 0 {
		return fmt.Errorf("%w: route %s has non-positive distance", ErrInvalidCatalog, name)
	}
	if len(r.Modes) == 0 {
		return fmt.Errorf("%w: route %s has no modes", ErrInvalidCatalog, name)
	}

	seen := make(map[string]bool, len(r.Modes))
	for _, m := range r.Modes {
		if m.Mode == "" {
			return fmt.Errorf("%w: route %s has a mode without a name", ErrInvalidCatalog, name)
		}
		if seen[m.Mode] {
			return fmt.Errorf("%w: route %s lists mode %s twice", ErrInvalidCatalog, name, m.Mode)
		}
		seen[m.Mode] = true

		if m.Price <= 0 {
			return fmt.Errorf("%w: route %s mode %s has non-positive price", ErrInvalidCatalog, name, m.Mode)
		}
		if m.Availability < 0 {
			return fmt.Errorf("%w: route %s mode %s has negative availability", ErrInvalidCatalog, name, m.Mode)
		}
	}
	return nil
}

// Lookup returns a copy of the route between source and destination in
// either direction, or ErrRouteNotFound.
func (c *Catalog) Lookup(source, destination string) (*RouteFacts, error) {
	r, ok := c.routes[NewRouteKey(source, destination)]
	if !ok {
		return nil, ErrRouteNotFound
	}
	cp := *r
	cp.Modes = append([]ModeFacts(nil), r.Modes...)
	return &cp, nil
}

// displayName title-cases a normalized location, so "  new DELHI" lists as "New Delhi".
func displayName(location string) string {
	return cases.Title(language.Und).String(NormalizeLocation(location))
}

// ListRoutes returns every catalogued route with title-cased names, sorted by source.
func (c *Catalog) ListRoutes() []RouteSummary {
	return append([]RouteSummary(nil), c.listing...)
}

// Len reports the number of catalogued routes.
func (c *Catalog) Len() int {
	return len(c.routes)
}
