package routes

import "sort"

// TransportOption is one mode of a recommendation.
type TransportOption struct {
	Mode               string       `json:"mode"`
	Duration           string       `json:"duration"`
	Price              float64      `json:"price"`
	Distance           float64      `json:"distance"`
	Availability       int          `json:"availability"`
	Comfort            ComfortLevel `json:"comfort_level"`
	EstimatedCostRange string       `json:"estimated_cost_range"`
}

// Recommendation is the result of a route query.
type Recommendation struct {
	Source      string            `json:"source"`
	Destination string            `json:"destination"`
	DistanceKM  float64           `json:"distance_km"`
	TravelModes []TransportOption `json:"travel_modes"`
	BestFor     BestOptions       `json:"best_for"`

	Picks Picks `json:"-"`
}

// Recommender answers route queries against a catalog.
type Recommender struct {
	catalog *Catalog
}

func NewRecommender(catalog *Catalog) *Recommender {
	return &Recommender{catalog: catalog}
}

// Catalog returns the catalog the recommender reads from.
func (r *Recommender) Catalog() *Catalog {
	return r.catalog
}

// Recommend builds the per-mode options for a route, cheapest first, along
// with the best-for picks. Errors from the catalog (ErrRouteNotFound) are
// returned as-is.
func (r *Recommender) Recommend(source, destination string) (*Recommendation, error) {
	route, err := r.catalog.Lookup(source, destination)
	if err != nil {
		return nil, err
	}

	options := make([]TransportOption, 0, len(route.Modes))
	for _, m := range route.Modes {
		options = append(options, TransportOption{
			Mode:               m.Mode,
			Duration:           m.Duration,
			Price:              m.Price,
			Distance:           route.DistanceKM,
			Availability:       m.Availability,
			Comfort:            m.Comfort,
			EstimatedCostRange: EstimateRange(m.Price, m.Mode),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})

	// Picks use catalog order, not the sorted options.
	picks := SelectPicks(route.Modes)

	return &Recommendation{
		Source:      source,
		Destination: destination,
		DistanceKM:  route.DistanceKM,
		TravelModes: options,
		BestFor:     picks.Options(),
		Picks:       picks,
	}, nil
}
