package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"careermatch/cv-matcher/internal/config"
	"careermatch/cv-matcher/internal/handlers"
	"careermatch/cv-matcher/internal/repositories"
	"careermatch/cv-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	cvRepo := repositories.NewCVAnalysisRepository(db)
	surveyRepo := repositories.NewSurveyRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	matchRepo := repositories.NewMatchResultRepository(db)
	runRepo := repositories.NewMatchRunRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	extractor := services.NewCVExtractorService(pdfParser)
	skillMatcher := services.NewSkillMatcherService(cfg.Matching.SkillThreshold)
	matchEngine := services.NewMatchEngine(skillMatcher, cfg.Matching)
	log.Println("✅ Services initialized successfully")

	// Initialize matcher
	matcherService := services.NewMatcherService(
		runRepo,
		cvRepo,
		surveyRepo,
		jobRepo,
		matchRepo,
		matchEngine,
	)
	log.Println("✅ Matcher service initialized")

	// Initialize worker
	worker := services.NewWorker(
		runRepo,
		matcherService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		cvRepo,
		storageService,
		extractor,
		cfg.Storage.MaxFileSize,
	)
	surveyHandler := handlers.NewSurveyHandler(surveyRepo)
	jobHandler := handlers.NewJobHandler(jobRepo)
	matchHandler := handlers.NewMatchHandler(runRepo, matchRepo, jobRepo, worker)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/survey", surveyHandler.HandleSubmitSurvey)
	api.Post("/jobs", jobHandler.HandleCreateJob)
	api.Get("/jobs", jobHandler.HandleListJobs)
	api.Get("/jobs/:id", jobHandler.HandleGetJob)
	api.Post("/match", matchHandler.HandleStartMatching)
	api.Get("/match/:id", matchHandler.HandleGetRunStatus)
	api.Get("/candidates/:id/analysis", uploadHandler.HandleGetAnalysis)
	api.Get("/candidates/:id/matches", matchHandler.HandleListMatches)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/survey",
				"POST /api/v1/jobs",
				"GET /api/v1/jobs",
				"POST /api/v1/match",
				"GET /api/v1/match/:id",
				"GET /api/v1/candidates/:id/matches",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
