package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"storefront-dashboard/internal/config"
	"storefront-dashboard/internal/handlers"
	"storefront-dashboard/internal/middleware"
	"storefront-dashboard/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize backend service (real if configured, mock otherwise)
	var backend services.BackendService
	if cfg.Backend.BaseURL != "" {
		backend = services.NewBackendClient(services.BackendConfig{
			BaseURL: cfg.Backend.BaseURL,
			Timeout: cfg.Backend.Timeout,
		})
		log.Printf("Backend service: Using commerce backend at %s", cfg.Backend.BaseURL)
	} else {
		backend = services.NewMockBackendService()
	}

	// Initialize optional snapshot cache
	var snapshotCache *services.SnapshotCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v", err)
			log.Println("Continuing without snapshot cache...")
		} else {
			snapshotCache = services.NewSnapshotCache(redisClient, cfg.Redis.SnapshotTTL)
			log.Printf("Snapshot cache enabled (TTL %s)", cfg.Redis.SnapshotTTL)
		}
	}

	// Initialize services
	dashboardService := services.NewDashboardService(backend, snapshotCache)
	catalogService := services.NewCatalogService(dashboardService)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(dashboardService)

	// Initialize router
	r := chi.NewRouter()

	// Basic middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORS.AllowedOrigins
	r.Use(middleware.CORSMiddleware(corsConfig))
	r.Use(middleware.SecurityHeadersMiddleware)

	// Throttle cache-bypassing refreshes so one client cannot hammer the
	// commerce backend
	refreshLimiter := middleware.NewRefreshRateLimiter(10, time.Minute)
	r.Use(middleware.RefreshRateLimit(refreshLimiter))

	// Storefront routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{id}", catalogHandler.GetProduct)
		r.Get("/cart/summary", cartHandler.CartSummary)
		r.Get("/wishlist/summary", cartHandler.WishlistSummary)
	})

	// Admin analytics routes
	r.Route("/admin", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.AdminDashboard)
		r.Get("/analytics/revenue", dashboardHandler.Revenue)
		r.Get("/analytics/categories", dashboardHandler.Categories)
		r.Get("/analytics/ratings", dashboardHandler.Ratings)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"storefront-dashboard"}`))
	})

	serverAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s (Environment: %s)", serverAddr, cfg.Server.Env)
	log.Fatal(http.ListenAndServe(serverAddr, r))
}
