package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
	"github.com/adrien-rx/MorphoFitBack/internal/services"
)

type programApplicationService interface {
	GenerateForUser(ctx context.Context, userID int64, config models.ProgramConfig) (*models.GeneratedProgram, error)
	SaveProgramAsTemplates(ctx context.Context, userID int64, program models.GeneratedProgram) ([]int64, error)
	ListTemplates(ctx context.Context, userID int64) ([]models.WorkoutTemplate, error)
}

type ProgramHandler struct {
	service programApplicationService
}

func NewProgramHandler(service programApplicationService) *ProgramHandler {
	return &ProgramHandler{service: service}
}

type programExerciseResponse struct {
	models.ProgramExercise
	Band ScoreBand `json:"band"`
}

type generatedWorkoutResponse struct {
	Name          string                    `json:"name"`
	TargetMuscles []string                  `json:"target_muscles"`
	Exercises     []programExerciseResponse `json:"exercises"`
}

type generatedProgramResponse struct {
	Config   models.ProgramConfig       `json:"config"`
	Workouts []generatedWorkoutResponse `json:"workouts"`
}

func (h *ProgramHandler) GenerateProgram(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var config models.ProgramConfig
	if err := c.BodyParser(&config); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProgramConfig(config); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	program, err := h.service.GenerateForUser(c.Context(), userID, config)
	if err != nil {
		return mapProgramError(c, err)
	}

	return c.JSON(fiber.Map{"program": newGeneratedProgramResponse(program)})
}

type saveProgramRequest struct {
	Program models.GeneratedProgram `json:"program"`
}

func (h *ProgramHandler) SaveProgram(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req saveProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Program.Workouts) == 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "program must contain at least one workout"})
	}

	templateIDs, err := h.service.SaveProgramAsTemplates(c.Context(), userID, req.Program)
	if err != nil {
		return mapProgramError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"template_ids": templateIDs})
}

func (h *ProgramHandler) ListTemplates(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	templates, err := h.service.ListTemplates(c.Context(), userID)
	if err != nil {
		return mapProgramError(c, err)
	}

	return c.JSON(fiber.Map{"templates": templates})
}

func newGeneratedProgramResponse(program *models.GeneratedProgram) generatedProgramResponse {
	response := generatedProgramResponse{
		Config:   program.Config,
		Workouts: make([]generatedWorkoutResponse, 0, len(program.Workouts)),
	}
	for _, workout := range program.Workouts {
		workoutResponse := generatedWorkoutResponse{
			Name:          workout.Name,
			TargetMuscles: workout.TargetMuscles,
			Exercises:     make([]programExerciseResponse, 0, len(workout.Exercises)),
		}
		for _, exercise := range workout.Exercises {
			workoutResponse.Exercises = append(workoutResponse.Exercises, programExerciseResponse{
				ProgramExercise: exercise,
				Band:            BandForScore(exercise.MorphoScore),
			})
		}
		response.Workouts = append(response.Workouts, workoutResponse)
	}
	return response
}

func mapProgramError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to process program request"})
	}
}
