package routes

import (
	"time"

	"mindwell/backend/config"
	"mindwell/backend/controllers"
	"mindwell/backend/middleware"
	"mindwell/backend/predictor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, runner *predictor.Runner) {
	// Liveness check
	app.Get("/api/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Server is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", authController.Me)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Journal routes
	journalController := controllers.NewJournalController(db, cfg)
	journals := app.Group("/api/journals", authMiddleware)
	journals.Get("/", journalController.GetJournals)
	journals.Post("/", journalController.CreateJournal)
	journals.Get("/:id", journalController.GetJournal)
	journals.Put("/:id", journalController.UpdateJournal)
	journals.Delete("/:id", journalController.DeleteJournal)

	// Wellness routes
	wellnessController := controllers.NewWellnessController(db, cfg)
	app.Get("/api/wellness/test", wellnessController.Test)
	app.Post("/api/wellness/assess", authMiddleware, wellnessController.Assess)
	app.Post("/api/wellness/predict", wellnessController.Predict)
	app.Get("/api/wellness/history", authMiddleware, wellnessController.History)

	// Health prediction routes
	healthController := controllers.NewHealthController(db, cfg, runner)
	app.Get("/api/health/test", healthController.Test)
	health := app.Group("/api/health", authMiddleware)
	health.Post("/diabetes-predict", healthController.DiabetesPredict)
	health.Post("/diabetes-save", healthController.DiabetesSave)
	health.Get("/diabetes-history", healthController.DiabetesHistory)
	health.Post("/heart-predict", healthController.HeartPredict)
	health.Post("/heart-disease-save", healthController.HeartSave)
	health.Get("/heart-disease-history", healthController.HeartHistory)
	health.Post("/mental-health-predict", healthController.MentalHealthPredict)
	health.Get("/mental-health-history", healthController.MentalHealthHistory)

	// Student routes
	studentController := controllers.NewStudentController(db, cfg)
	app.Get("/api/student/resources", studentController.Resources)
	student := app.Group("/api/student", authMiddleware)
	student.Post("/stress", studentController.Stress)
	student.Get("/stress/history", studentController.StressHistory)
	student.Post("/procrastination", studentController.Procrastination)
	student.Post("/sleep", studentController.Sleep)
	student.Get("/sleep/weekly", studentController.SleepWeekly)
	student.Post("/confidence", studentController.Confidence)
	student.Post("/career", studentController.Career)
}
