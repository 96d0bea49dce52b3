package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
	"github.com/adrien-rx/MorphoFitBack/internal/services"
)

type exerciseCatalogStore interface {
	ListPage(ctx context.Context, limit, offset int) ([]models.Exercise, error)
	ListByMuscleGroup(ctx context.Context, muscleGroup string, limit, offset int) ([]models.Exercise, error)
	Count(ctx context.Context) (int, error)
	CountByMuscleGroup(ctx context.Context, muscleGroup string) (int, error)
	GetByID(ctx context.Context, exerciseID int64) (*models.Exercise, error)
}

type morphotypeProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.MorphotypeProfile, error)
}

type ExerciseHandler struct {
	exerciseRepo   exerciseCatalogStore
	morphotypeRepo morphotypeProfileReader
}

func NewExerciseHandler(exerciseRepo exerciseCatalogStore, morphotypeRepo morphotypeProfileReader) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseRepo:   exerciseRepo,
		morphotypeRepo: morphotypeRepo,
	}
}

type scoredExerciseResponse struct {
	Exercise models.Exercise `json:"exercise"`
	Score    *int            `json:"score,omitempty"`
	Band     *ScoreBand      `json:"band,omitempty"`
}

// ListExercises returns a catalog page. When the caller has completed the
// morphotype questionnaire each entry carries its suitability score and band.
func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	page, limit := parsePageParams(c)
	muscleGroup := strings.TrimSpace(c.Query("muscle_group"))
	offset := (page - 1) * limit

	var exercises []models.Exercise
	var total int
	if muscleGroup != "" {
		exercises, err = h.exerciseRepo.ListByMuscleGroup(c.Context(), muscleGroup, limit, offset)
		if err == nil {
			total, err = h.exerciseRepo.CountByMuscleGroup(c.Context(), muscleGroup)
		}
	} else {
		exercises, err = h.exerciseRepo.ListPage(c.Context(), limit, offset)
		if err == nil {
			total, err = h.exerciseRepo.Count(c.Context())
		}
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch exercises"})
	}

	profile := h.loadProfile(c.Context(), userID)

	items := make([]scoredExerciseResponse, 0, len(exercises))
	for _, exercise := range exercises {
		item := scoredExerciseResponse{Exercise: exercise}
		if profile != nil {
			result := services.ScoreExercise(profile, services.RecommendationFor(exercise))
			band := BandForScore(result.Score)
			item.Score = &result.Score
			item.Band = &band
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{
		"exercises":  items,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

// GetExerciseScore scores one exercise for the current user. A missing
// profile is not an error: the engine resolves it to neutral defaults.
func (h *ExerciseHandler) GetExerciseScore(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	exerciseID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || exerciseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	exercise, err := h.exerciseRepo.GetByID(c.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch exercise"})
	}

	profile := h.loadProfile(c.Context(), userID)
	result := services.ScoreExercise(profile, services.RecommendationFor(*exercise))

	return c.JSON(fiber.Map{
		"exercise_id": exercise.ID,
		"score":       result,
		"band":        BandForScore(result.Score),
	})
}

func (h *ExerciseHandler) loadProfile(ctx context.Context, userID int64) *models.MorphotypeProfile {
	profile, err := h.morphotypeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil
	}
	return profile
}

func parsePageParams(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
