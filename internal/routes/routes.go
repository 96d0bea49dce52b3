package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adrien-rx/MorphoFitBack/internal/config"
	"github.com/adrien-rx/MorphoFitBack/internal/handlers"
	"github.com/adrien-rx/MorphoFitBack/internal/middleware"
	"github.com/adrien-rx/MorphoFitBack/internal/repository"
	"github.com/adrien-rx/MorphoFitBack/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	morphotypeRepo := repository.NewMorphotypeRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	programService := services.NewProgramService(morphotypeRepo, exerciseRepo, templateRepo)

	authHandler := handlers.NewAuthHandler(userRepo, morphotypeRepo, cfg.JWTSecret)
	morphotypeHandler := handlers.NewMorphotypeHandler(morphotypeRepo)
	exerciseHandler := handlers.NewExerciseHandler(exerciseRepo, morphotypeRepo)
	programHandler := handlers.NewProgramHandler(programService)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	morphotype := authProtected.Group("/morphotype")
	morphotype.Get("", morphotypeHandler.GetMorphotype)
	morphotype.Put("", morphotypeHandler.UpdateMorphotype)

	exercises := authProtected.Group("/exercises")
	exercises.Get("", exerciseHandler.ListExercises)
	exercises.Get("/:id/score", exerciseHandler.GetExerciseScore)

	programs := authProtected.Group("/programs")
	programs.Post("/generate", programHandler.GenerateProgram)
	programs.Post("/save", programHandler.SaveProgram)
	programs.Get("/templates", programHandler.ListTemplates)

	if cfg.DocsEnabled() {
		api.Get("/docs", docsHandler)
	}
}
