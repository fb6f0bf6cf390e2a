package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/flick2split/backend/docs"
	"github.com/flick2split/backend/internal/config"
	"github.com/flick2split/backend/internal/currency"
	"github.com/flick2split/backend/internal/report"
	"github.com/flick2split/backend/internal/session"
	"github.com/flick2split/backend/internal/split"
)

// @title           Flick2Split API
// @version         1.0
// @description     Bill splitting engine: item assignment with proportional tax and tip, even splits, and shareable settlement summaries.
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Exchange rates for display-only conversion (falls back to 1:1)
	rates := currency.NewClient(cfg.ExchangeRateURL, cfg.ExchangeRateTimeout)

	// Session feature: the in-memory splitting ledger
	sessionStore := session.NewStore()
	sessionService := session.NewService(sessionStore)

	// Report feature (mounted under each session)
	reportService := report.NewService(sessionService, rates)
	reportHandler := report.NewHandler(reportService)

	sessionHandler := session.NewHandler(sessionService, reportHandler.Routes())

	// Even-split feature (bypasses item assignment entirely)
	evenSplitHandler := split.NewHandler()

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/sessions", sessionHandler.Routes())
		r.Mount("/even-split", evenSplitHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
