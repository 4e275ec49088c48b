package routes

// DefaultRoutes is the compiled-in route data.
func DefaultRoutes() []RouteFacts {
	return []RouteFacts{
		{
			Source: "Delhi", Destination: "Nagpur", DistanceKM: 1365,
			Modes: []ModeFacts{
				{Mode: "plane", Duration: "2 hours", Price: 3500, Availability: 8, Comfort: ComfortStandard},
				{Mode: "train", Duration: "18 hours", Price: 1500, Availability: 6, Comfort: ComfortStandard},
				{Mode: "bus", Duration: "20 hours", Price: 800, Availability: 12, Comfort: ComfortBudget},
			},
		},
		{
			Source: "Mumbai", Destination: "Bangalore", DistanceKM: 981,
			Modes: []ModeFacts{
				{Mode: "plane", Duration: "1.5 hours", Price: 3000, Availability: 12, Comfort: ComfortStandard},
				{Mode: "train", Duration: "16 hours", Price: 1200, Availability: 5, Comfort: ComfortStandard},
				{Mode: "bus", Duration: "18 hours", Price: 600, Availability: 10, Comfort: ComfortBudget},
			},
		},
		{
			Source: "Bangalore", Destination: "Hyderabad", DistanceKM: 586,
			Modes: []ModeFacts{
				{Mode: "plane", Duration: "1 hour", Price: 2500, Availability: 6, Comfort: ComfortStandard},
				{Mode: "train", Duration: "12 hours", Price: 800, Availability: 4, Comfort: ComfortStandard},
				{Mode: "bus", Duration: "8 hours", Price: 400, Availability: 15, Comfort: ComfortBudget},
			},
		},
	}
}

// DefaultCatalog builds the catalog from DefaultRoutes.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultRoutes())
	if err != nil {
		panic(err)
	}
	return c
}
