package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCollectorExposition(t *testing.T) {
	c := NewCollector(3)
	c.ObserveRecommendation(true, 0.001)
	c.ObserveRecommendation(false, 0.001)
	c.ObserveExplanation("fallback")
	c.ObservePDF()

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	text := string(body)

	for _, want := range []string{
		`travel_recommendations_total{outcome="found"} 1`,
		`travel_recommendations_total{outcome="not_found"} 1`,
		`travel_explanations_total{source="fallback"} 1`,
		`travel_pdf_generated_total 1`,
		`travel_catalog_routes 3`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	c.ObserveRecommendation(true, 1)
	c.ObserveExplanation("llm")
	c.ObservePDF()
}
