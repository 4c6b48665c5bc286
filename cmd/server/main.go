// main.go
//
// Roadmap and user feedback management service
// Copyright (c) 2026 the roadmap-feedback authors
//
// This file is part of roadmap-feedback.
// roadmap-feedback is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roadmap-feedback is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roadmap-feedback.
// If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/030106mia/Roadmap-Feedback/internal/ai"
	"github.com/030106mia/Roadmap-Feedback/internal/config"
	"github.com/030106mia/Roadmap-Feedback/internal/database"
	"github.com/030106mia/Roadmap-Feedback/internal/handlers"
	"github.com/030106mia/Roadmap-Feedback/internal/middleware"
	"github.com/030106mia/Roadmap-Feedback/internal/services"
	"github.com/030106mia/Roadmap-Feedback/internal/storage"
	"github.com/030106mia/Roadmap-Feedback/internal/types"
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	_ "github.com/030106mia/Roadmap-Feedback/docs/api" // Swagger docs
)

// @title Roadmap Feedback API
// @version 1.0.0
// @description Roadmap board, item and user feedback management service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/030106mia/Roadmap-Feedback

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Fold legacy per-board roadmaps into the unified board at startup so
	// the first request does not pay for it.
	services.EnsureUnifiedRoadmap(db)

	// Image blob store
	store, err := storage.NewBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// OCR proxy, disabled without an API key
	ocrClient := ai.NewOCRClient(cfg)
	if ocrClient == nil {
		log.Println("OCR proxy disabled: no API key configured")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
		BodyLimit:             storage.MaxUploadSize + 1024*1024,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("roadmap-feedback")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Locally stored uploads
	if cfg.BlobEndpoint == "" {
		app.Static("/uploads", cfg.UploadDir)
	}

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	boardHandler := &handlers.BoardHandler{DB: db}
	itemHandler := &handlers.ItemHandler{DB: db}
	feedbackHandler := &handlers.FeedbackHandler{DB: db}
	tagHandler := &handlers.TagHandler{DB: db}
	uploadHandler := &handlers.UploadHandler{Store: store}
	ocrHandler := &handlers.OCRHandler{Client: ocrClient}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db}

	// Board routes
	api.Get("/boards", boardHandler.ListBoards)
	api.Post("/boards", boardHandler.CreateBoard)
	api.Get("/boards/:id", boardHandler.GetBoard)
	api.Patch("/boards/:id", boardHandler.UpdateBoard)
	api.Delete("/boards/:id", boardHandler.DeleteBoard)

	// Roadmap item routes; reorder before :id so the literal path wins
	api.Get("/items", itemHandler.ListItems)
	api.Post("/items", itemHandler.CreateItem)
	api.Delete("/items", itemHandler.DeleteAllItems)
	api.Post("/items/reorder", itemHandler.ReorderItems)
	api.Get("/items/:id", itemHandler.GetItem)
	api.Patch("/items/:id", itemHandler.UpdateItem)
	api.Delete("/items/:id", itemHandler.DeleteItem)

	// Feedback routes
	api.Get("/feedback", feedbackHandler.ListFeedback)
	api.Post("/feedback", feedbackHandler.CreateFeedback)
	api.Post("/feedback/reorder", feedbackHandler.ReorderFeedback)
	api.Get("/feedback/:id", feedbackHandler.GetFeedback)
	api.Patch("/feedback/:id", feedbackHandler.UpdateFeedback)
	api.Delete("/feedback/:id", feedbackHandler.DeleteFeedback)

	// Tag routes
	api.Get("/tags", tagHandler.ListTags)

	// Upload and OCR routes
	api.Post("/feedback/upload", uploadHandler.Upload)
	api.Post("/ai/ocr", ocrHandler.ExtractText)

	// Health route
	api.Get("/health", healthHandler.Health)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Validation errors keep their own status and type
	var ce *types.CustomError
	if errors.As(err, &ce) {
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
