package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Mr2-hex/quivo-backend/adzuna"
	"github.com/Mr2-hex/quivo-backend/config"
	"github.com/Mr2-hex/quivo-backend/extractor"
	"github.com/Mr2-hex/quivo-backend/gemini"
	"github.com/Mr2-hex/quivo-backend/handlers"
	"github.com/Mr2-hex/quivo-backend/tempstore"
)

// corsConfig allows the known front-end origins. Credentialed CORS and
// a wildcard origin are mutually exclusive in browsers, so the list
// stays explicit.
func corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Scratch directory for uploads, created once at startup
	store, err := tempstore.New(cfg.TempDir)
	if err != nil {
		log.Fatalf("Failed to initialize temp store: %v", err)
	}
	log.Printf("Temp store initialized at %s", store.Dir())

	// Initialize Gemini client
	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	log.Println("Gemini client initialized successfully")

	// Initialize Adzuna client and extractor
	adzunaClient := adzuna.NewClient(cfg)
	resumeExtractor := extractor.New()

	// Create handlers
	cvHandler := handlers.NewCVHandler(store, resumeExtractor, geminiClient, adzunaClient)
	jobsHandler := handlers.NewJobsHandler(adzunaClient)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the front-end
	router.Use(cors.New(corsConfig()))

	// Register routes
	router.GET("/health", handlers.HealthCheck)
	router.POST("/api/upload-cv", cvHandler.UploadCV)
	router.POST("/getSpecificJob", jobsHandler.GetSpecificJob)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Listening on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
