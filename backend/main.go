package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"youedu/backend/cache"
	"youedu/backend/config"
	"youedu/backend/middleware"
	"youedu/backend/routes"
	"youedu/backend/services/certificates"
	"youedu/backend/services/gamification"
	"youedu/backend/services/gemini"
	"youedu/backend/services/progress"
	"youedu/backend/services/students"
	"youedu/backend/services/trails"
	"youedu/backend/services/transcription"
	"youedu/backend/services/youtube"
	"youedu/backend/store"
	"youedu/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Storage backend
	var rowStore store.RowStore
	if cfg.StorageMode == "postgres" {
		db, err := utils.InitDB(cfg)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}
		rowStore = store.NewGormStore(db)
	} else {
		logger.Println("Using in-memory storage")
		rowStore = store.NewMemStore()
	}

	// Generated-content cache
	var contentCache cache.Cache
	if cfg.RedisAddr != "" {
		contentCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		contentCache = cache.NewMemory()
	}

	// AI provider and pipelines
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, logger)
	geminiService := gemini.NewService(geminiClient, contentCache, logger)

	// Transcription fallback chain
	transcriptionService := transcription.NewService(logger,
		transcription.NewGoogleProvider(cfg.GoogleCredentials),
		transcription.NewAssemblyAIProvider(cfg.AssemblyAIAPIKey),
		transcription.NewGeminiProvider(geminiClient),
	)

	deps := routes.Deps{
		Cfg:           cfg,
		Gemini:        geminiService,
		Transcription: transcriptionService,
		Progress:      progress.NewService(),
		Students:      students.NewService(rowStore),
		Trails:        trails.NewService(rowStore),
		Gamification:  gamification.NewService(),
		Certificates:  certificates.NewService(rowStore),
		YouTube:       youtube.NewService(),
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // video uploads
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, deps)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
