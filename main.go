package main

import (
	"context"
	"log"
	"time"

	"techtonic/config"
	"techtonic/database"
	"techtonic/handlers"
	"techtonic/metrics"
	"techtonic/routes"
	"techtonic/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("❌ Failed to load route catalog: %v", err)
	}
	log.Printf("✅ Route catalog loaded: %d routes", catalog.Len())

	// Search log (optional)
	var searches handlers.SearchRecorder
	if cfg.DatabaseDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		store, err := database.Open(ctx, cfg.DatabaseDSN)
		cancel()
		if err != nil {
			log.Fatalf("❌ Failed to open search log: %v", err)
		}
		defer store.Close()
		searches = store
		log.Println("✅ Database connected and migrated")
	} else {
		log.Println("⚠️  No database configured — search history disabled")
	}

	amadeus := services.NewAmadeusClient(cfg.AmadeusClientID, cfg.AmadeusClientSecret, cfg.AmadeusBaseURL)
	if amadeus.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := amadeus.Token(ctx); err != nil {
			log.Printf("⚠️  Amadeus token pre-warm failed: %v", err)
		} else {
			log.Println("✅ Amadeus API authenticated")
		}
		cancel()
	} else {
		log.Println("⚠️  AMADEUS_CLIENT_ID or AMADEUS_CLIENT_SECRET not set — /amadeus/check needs credentials in the request")
	}

	ai := services.NewAIClient(cfg.HFAPIKey, cfg.HFModel, cfg.HFBaseURL)
	if ai.Configured() {
		log.Println("✅ AI (HuggingFace) initialized with model:", ai.Model())
	} else {
		log.Println("⚠️  HUGGINGFACE_API_KEY not set — explanations will use fallback text")
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector(catalog.Len())
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURLs,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routeHandler := handlers.NewRouteHandler(routes.NewRecommender(catalog), ai, searches, collector)
	amadeusHandler := handlers.NewAmadeusHandler(amadeus)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler(catalog, searches))
		api.POST("/routes/recommend", routeHandler.Recommend)
		api.POST("/routes/recommend/pdf", routeHandler.RecommendPDF)
		api.POST("/routes/explain", routeHandler.Explain)
		api.GET("/routes/available-routes", routeHandler.AvailableRoutes)
		api.GET("/routes/history", routeHandler.History)
		api.POST("/amadeus/check", amadeusHandler.Check)
	}

	if collector != nil {
		r.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	log.Printf("🚀 TechTonic travel backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
