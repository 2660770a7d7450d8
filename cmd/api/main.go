// main.go - The entry point and router setup.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendlens/spendlens-backend/configs"
	"github.com/spendlens/spendlens-backend/internal/actions"
	"github.com/spendlens/spendlens-backend/internal/ai"
	"github.com/spendlens/spendlens-backend/internal/api"
	"github.com/spendlens/spendlens-backend/internal/pipeline"
	"github.com/spendlens/spendlens-backend/internal/processor"
	"github.com/spendlens/spendlens-backend/internal/storage"
)

func main() {
	configs.LoadConfig()

	if ginMode := os.Getenv("GIN_MODE"); ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := os.MkdirAll(configs.UPLOAD_DIR, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	ctx := context.Background()

	// A missing or rejected credential fails here, before any request is
	// accepted.
	client, err := ai.NewClientFromConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to create inference client: %v", err)
	}
	defer client.Close()

	engine := processor.NewTesseractEngine()
	pipe := pipeline.New(client, engine, actions.Default())
	narrator := ai.NewNarrator(client)

	// Persistence is optional: without MONGO_URI the API still scans and
	// routes, it just doesn't save transactions.
	var store storage.TransactionStore
	if configs.MONGO_URI != "" {
		mongoStore, err := storage.NewMongoStore(ctx, configs.MONGO_URI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoStore.Close(context.Background())
		store = mongoStore
	} else {
		log.Println("MONGO_URI not set - transaction persistence disabled")
	}

	cache := storage.NewScanCache(time.Duration(configs.SCAN_CACHE_TTL_MIN) * time.Minute)
	server := api.NewServer(pipe, narrator, store, cache)

	router := gin.Default()

	// CORS middleware - configure allowed origins for production
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", configs.ALLOWED_ORIGINS)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/", func(c *gin.Context) {
		c.String(200, "ok")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "spendlens-ingestion",
			"version": "1.0.0",
		})
	})

	router.POST("/api/v1/scan/receipt", server.ScanReceiptHandler)
	router.POST("/api/v1/voice/query", server.VoiceQueryHandler)
	router.POST("/api/v1/voice/narrate", server.NarrateHandler)

	srv := &http.Server{
		Addr:           ":" + configs.PORT,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   3 * time.Minute, // allow slow OCR plus inference
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Starting server on :%s", configs.PORT)
		log.Println("API Endpoints:")
		log.Println("  POST /api/v1/scan/receipt")
		log.Println("  POST /api/v1/voice/query")
		log.Println("  POST /api/v1/voice/narrate")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
