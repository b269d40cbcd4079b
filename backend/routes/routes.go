package routes

import (
	"github.com/gofiber/fiber/v2"

	"youedu/backend/config"
	"youedu/backend/controllers"
	"youedu/backend/middleware"
	"youedu/backend/services/certificates"
	"youedu/backend/services/gamification"
	"youedu/backend/services/gemini"
	"youedu/backend/services/progress"
	"youedu/backend/services/students"
	"youedu/backend/services/trails"
	"youedu/backend/services/transcription"
	"youedu/backend/services/youtube"
)

// Deps carries the service layer into route registration.
type Deps struct {
	Cfg           *config.Config
	Gemini        *gemini.Service
	Transcription *transcription.Service
	Progress      *progress.Service
	Students      *students.Service
	Trails        *trails.Service
	Gamification  *gamification.Service
	Certificates  *certificates.Service
	YouTube       *youtube.Service
}

func SetupRoutes(app *fiber.App, deps Deps) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authMiddleware := middleware.AuthMiddleware(deps.Cfg)

	// Auth routes
	authController := controllers.NewAuthController(deps.Students, deps.Cfg)
	app.Post("/api/auth/sync-user", authController.SyncUser)
	app.Get("/api/auth/me/:email", authController.Me)

	// Video URL routes
	youtubeController := controllers.NewYouTubeController(deps.YouTube)
	app.Post("/api/youtube/parse", youtubeController.Parse)
	app.Get("/api/youtube/oembed", youtubeController.OEmbed)

	// Challenge generation
	challengesController := controllers.NewChallengesController(deps.Gemini)
	app.Post("/api/challenges/generate", challengesController.Generate)

	// Transcription routes
	transcriptionController := controllers.NewTranscriptionController(deps.Transcription, deps.Gemini)
	transcriptionGroup := app.Group("/api/transcription")
	transcriptionGroup.Post("/transcribe", transcriptionController.Transcribe)
	transcriptionGroup.Post("/generate-quiz", transcriptionController.GenerateQuiz)
	transcriptionGroup.Get("/providers", transcriptionController.Providers)

	// Assessment routes
	assessmentController := controllers.NewAssessmentController(deps.Gemini, deps.Progress, deps.Trails)
	assessment := app.Group("/api/assessment")
	assessment.Get("/checkpoints/:videoId", assessmentController.GetCheckpoints)
	assessment.Post("/checkpoints/generate", assessmentController.GenerateCheckpoints)
	assessment.Post("/checkpoint/answer", assessmentController.AnswerCheckpoint)
	assessment.Post("/checkpoint/skip", assessmentController.SkipCheckpoint)
	assessment.Get("/progress/:trailId/:videoId", assessmentController.GetProgress)
	assessment.Patch("/progress/video", assessmentController.UpdateVideoProgress)
	assessment.Get("/final/:trailId", assessmentController.GetFinalAssessment)
	assessment.Post("/final/submit", assessmentController.SubmitFinalAssessment)
	assessment.Get("/eligibility/:trailId", assessmentController.GetEligibility)

	// Trail routes
	trailsController := controllers.NewTrailsController(deps.Trails, deps.Progress)
	trailsGroup := app.Group("/api/trails")
	trailsGroup.Post("/", trailsController.Create)
	trailsGroup.Get("/", trailsController.List)
	trailsGroup.Patch("/progress", trailsController.UpdateProgress)
	trailsGroup.Get("/:id", trailsController.Get)
	trailsGroup.Put("/:id", trailsController.Update)
	trailsGroup.Delete("/:id", trailsController.Delete)
	trailsGroup.Post("/:id/videos", trailsController.AddVideo)

	// Certificate routes
	certificatesController := controllers.NewCertificatesController(deps.Certificates, deps.Students, deps.Trails, deps.Progress)
	certs := app.Group("/api/certificates")
	certs.Post("/generate", certificatesController.Generate)
	certs.Get("/verify/:code", certificatesController.Verify)
	certs.Get("/user/:email", certificatesController.ListByEmail)
	certs.Get("/:id", certificatesController.Get)

	// Student routes
	studentsController := controllers.NewStudentsController(deps.Students, deps.Gamification)
	studentsGroup := app.Group("/api/students", authMiddleware)
	studentsGroup.Get("/", studentsController.List)
	studentsGroup.Get("/email/:email", studentsController.GetByEmail)
	studentsGroup.Post("/sessions", studentsController.StartSession)
	studentsGroup.Patch("/sessions/:id/complete", studentsController.CompleteSession)
	studentsGroup.Post("/attempts", studentsController.RecordAttempt)
	studentsGroup.Get("/:id", studentsController.Get)
	studentsGroup.Post("/:id/add-xp", studentsController.AddXP)
	studentsGroup.Get("/:id/stats", studentsController.Stats)

	// Gamification routes
	gamificationController := controllers.NewGamificationController(deps.Gamification)
	game := app.Group("/api/gamification")
	game.Post("/update", gamificationController.Update)
	game.Post("/add-watch-time", gamificationController.AddWatchTime)
	game.Post("/complete-code-challenge", gamificationController.CompleteCodeChallenge)
	game.Post("/reset-streak", gamificationController.ResetStreak)
	game.Get("/:studentId", gamificationController.Get)

	// Provider diagnostics
	modelsController := controllers.NewModelsController(deps.Gemini)
	app.Get("/api/models", modelsController.List)
}
