package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techtonic/database"
	"techtonic/metrics"
	"techtonic/routes"
	"techtonic/services"
)

// SearchRecorder is the search log. A nil SearchRecorder disables it.
type SearchRecorder interface {
	SaveSearch(ctx context.Context, s *database.Search) error
	RecentSearches(ctx context.Context, limit int) ([]database.Search, error)
	Ping(ctx context.Context) error
}

type RecommendRequest struct {
	Source      string   `json:"source" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	TravelDate  string   `json:"travel_date"`
	Preferences []string `json:"preferences"`
}

type ExplainRequest struct {
	RecommendRequest
	Query string `json:"query"`
}

type ExplainResponse struct {
	Recommendation *routes.Recommendation `json:"recommendation"`
	Explanation    string                 `json:"explanation"`
	Source         string                 `json:"source"` // "llm" or "fallback"
}

type RouteHandler struct {
	recommender *routes.Recommender
	ai          *services.AIClient
	searches    SearchRecorder
	metrics     *metrics.Collector
	now         func() time.Time
}

func NewRouteHandler(recommender *routes.Recommender, ai *services.AIClient, searches SearchRecorder, m *metrics.Collector) *RouteHandler {
	return &RouteHandler{
		recommender: recommender,
		ai:          ai,
		searches:    searches,
		metrics:     m,
		now:         time.Now,
	}
}

// Recommend handles POST /routes/recommend.
func (h *RouteHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if !bindRoute(c, &req) {
		return
	}

	rec, ok := h.recommend(c, req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

// AvailableRoutes handles GET /routes/available-routes.
func (h *RouteHandler) AvailableRoutes(c *gin.Context) {
	list := h.recommender.Catalog().ListRoutes()
	c.JSON(http.StatusOK, gin.H{
		"total_routes": len(list),
		"routes":       list,
	})
}

// Explain handles POST /routes/explain.
func (h *RouteHandler) Explain(c *gin.Context) {
	var req ExplainRequest
	if !bindRoute(c, &req) {
		return
	}

	rec, ok := h.recommend(c, req.RecommendRequest)
	if !ok {
		return
	}

	resp := ExplainResponse{Recommendation: rec, Source: "llm"}
	text, err := h.ai.Explain(c.Request.Context(), rec, req.Query)
	if err != nil {
		if !errors.Is(err, services.ErrAINotConfigured) {
			log.Printf("⚠️  AI explanation failed: %v — using fallback text", err)
		}
		text = services.FallbackExplanation(rec)
		resp.Source = "fallback"
	}
	resp.Explanation = text

	h.metrics.ObserveExplanation(resp.Source)
	c.JSON(http.StatusOK, resp)
}

// RecommendPDF handles POST /routes/recommend/pdf.
func (h *RouteHandler) RecommendPDF(c *gin.Context) {
	var req RecommendRequest
	if !bindRoute(c, &req) {
		return
	}

	rec, ok := h.recommend(c, req)
	if !ok {
		return
	}

	pdf, err := services.GenerateRoutePDF(rec, h.now())
	if err != nil {
		log.Printf("❌ PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}
	h.metrics.ObservePDF()

	filename := fmt.Sprintf("route-%s-%s.pdf", slug(req.Source), slug(req.Destination))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// History handles GET /routes/history.
func (h *RouteHandler) History(c *gin.Context) {
	if h.searches == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search history is not enabled"})
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = min(max(n, 1), 100)
	}

	searches, err := h.searches.RecentSearches(c.Request.Context(), limit)
	if err != nil {
		log.Printf("❌ Failed to load search history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load search history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(searches), "searches": searches})
}

func bindRoute(c *gin.Context, req interface{ route() (string, string) }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return false
	}
	src, dst := req.route()
	if strings.TrimSpace(src) == "" || strings.TrimSpace(dst) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Source and destination must not be blank"})
		return false
	}
	return true
}

func (r *RecommendRequest) route() (string, string) { return r.Source, r.Destination }

// recommend runs the query and writes the error response itself when it fails.
func (h *RouteHandler) recommend(c *gin.Context, req RecommendRequest) (*routes.Recommendation, bool) {
	start := time.Now()
	rec, err := h.recommender.Recommend(req.Source, req.Destination)
	h.metrics.ObserveRecommendation(err == nil, time.Since(start).Seconds())

	switch {
	case errors.Is(err, routes.ErrRouteNotFound):
		log.Printf("No route for %q -> %q", req.Source, req.Destination)
		h.record(c.Request.Context(), req, nil)
		c.JSON(http.StatusNotFound, gin.H{"error": h.notFoundMessage(req)})
		return nil, false
	case err != nil:
		log.Printf("❌ Recommendation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build recommendation"})
		return nil, false
	}

	h.record(c.Request.Context(), req, rec)
	return rec, true
}

func (h *RouteHandler) notFoundMessage(req RecommendRequest) string {
	var examples []string
	for _, r := range h.recommender.Catalog().ListRoutes() {
		if len(examples) == 2 {
			break
		}
		examples = append(examples, r.Source+"-"+r.Destination)
	}
	return fmt.Sprintf("Route from %s to %s not found. Try popular routes like %s, etc.",
		req.Source, req.Destination, strings.Join(examples, ", "))
}

// record logs the query outcome. Failures are logged and never fail the request.
func (h *RouteHandler) record(ctx context.Context, req RecommendRequest, rec *routes.Recommendation) {
	if h.searches == nil {
		return
	}

	s := &database.Search{
		ID:          uuid.New().String(),
		Source:      strings.TrimSpace(req.Source),
		Destination: strings.TrimSpace(req.Destination),
	}
	if rec != nil {
		s.Found = true
		s.DistanceKM = rec.DistanceKM
		s.ModeCount = len(rec.TravelModes)
	}

	if err := h.searches.SaveSearch(ctx, s); err != nil {
		log.Printf("⚠️  Failed to record search: %v", err)
	}
}

func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-':
			return '-'
		}
		return -1
	}, routes.NormalizeLocation(s))
}
