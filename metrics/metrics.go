package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	Recommendations        *prometheus.CounterVec // outcome: found|not_found
	RecommendationDuration prometheus.Histogram
	Explanations           *prometheus.CounterVec // source: llm|fallback
	PDFsGenerated          prometheus.Counter
	CatalogRoutes          prometheus.Gauge
}

func NewCollector(catalogRoutes int) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_recommendations_total",
			Help: "Route recommendation requests by outcome.",
		}, []string{"outcome"}),
		RecommendationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travel_recommendation_duration_seconds",
			Help:    "Time spent building a route recommendation.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		Explanations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_explanations_total",
			Help: "Recommendation explanations by source.",
		}, []string{"source"}),
		PDFsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travel_pdf_generated_total",
			Help: "Recommendation PDFs rendered.",
		}),
		CatalogRoutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "travel_catalog_routes",
			Help: "Number of routes in the loaded catalog.",
		}),
	}

	reg.MustRegister(
		c.Recommendations,
		c.RecommendationDuration,
		c.Explanations,
		c.PDFsGenerated,
		c.CatalogRoutes,
		collectors.NewGoCollector(),
	)

	c.CatalogRoutes.Set(float64(catalogRoutes))
	return c
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Nil-safe recorders so handlers work without a collector.

func (c *Collector) ObserveRecommendation(found bool, seconds float64) {
	if c == nil {
		return
	}
	outcome := "found"
	if !found {
		outcome = "not_found"
	}
	c.Recommendations.WithLabelValues(outcome).Inc()
	c.RecommendationDuration.Observe(seconds)
}

func (c *Collector) ObserveExplanation(source string) {
	if c == nil {
		return
	}
	c.Explanations.WithLabelValues(source).Inc()
}

func (c *Collector) ObservePDF() {
	if c == nil {
		return
	}
	c.PDFsGenerated.Inc()
}
