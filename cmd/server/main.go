package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/ai"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/config"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/handler"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/middleware"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/seed"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/service"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" || cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// Create in-memory store and load the bundled dataset
	ctx := context.Background()
	memStore := store.NewMemoryStore()

	if err := seed.Apply(ctx, memStore, logger); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}
	logger.Info("store seeded")

	// AI service runs in degraded mode when no API key is configured
	aiService, err := ai.NewService(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create AI service: %v", err)
	}
	if !aiService.Available() {
		logger.Warn("AI features disabled: no API key configured")
	}

	// Create services
	docService := service.NewDocumentService(memStore, logger)
	searchService := service.NewSearchService(memStore, logger)
	activityService := service.NewActivityService(memStore, logger)
	analyticsService := service.NewAnalyticsService(memStore, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, logger)
	searchHandler := handler.NewSearchHandler(searchService, logger)
	categoryHandler := handler.NewCategoryHandler(memStore, logger)
	activityHandler := handler.NewActivityHandler(activityService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)
	aiHandler := handler.NewAIHandler(aiService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", docHandler.HealthCheck)

	// Document routes
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PUT /api/documents/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)

	// Search route
	mux.HandleFunc("GET /api/search", searchHandler.Search)

	// Category routes
	mux.HandleFunc("GET /api/categories", categoryHandler.ListCategories)

	// Activity and analytics routes
	mux.HandleFunc("GET /api/activity", activityHandler.RecentActivity)
	mux.HandleFunc("GET /api/analytics", analyticsHandler.GetAnalytics)

	// AI routes
	mux.HandleFunc("POST /api/ai/analyze-document", aiHandler.AnalyzeDocument)
	mux.HandleFunc("POST /api/ai/generate-tags", aiHandler.GenerateTags)
	mux.HandleFunc("POST /api/ai/categorize", aiHandler.Categorize)
	mux.HandleFunc("POST /api/ai/semantic-search", aiHandler.SemanticSearch)
	mux.HandleFunc("GET /api/ai/status", aiHandler.Status)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → RequestID → Routes
	root = middleware.RequestID()(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
