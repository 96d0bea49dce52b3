package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

type stubExerciseStore struct {
	exercises []models.Exercise
	total     int
	lastLimit int
	lastGroup string
}

func (s *stubExerciseStore) ListPage(_ context.Context, limit, _ int) ([]models.Exercise, error) {
	s.lastLimit = limit
	return s.exercises, nil
}

func (s *stubExerciseStore) ListByMuscleGroup(_ context.Context, muscleGroup string, limit, _ int) ([]models.Exercise, error) {
	s.lastGroup = muscleGroup
	s.lastLimit = limit
	return s.exercises, nil
}

func (s *stubExerciseStore) Count(_ context.Context) (int, error) {
	return s.total, nil
}

func (s *stubExerciseStore) CountByMuscleGroup(_ context.Context, _ string) (int, error) {
	return s.total, nil
}

func (s *stubExerciseStore) GetByID(_ context.Context, exerciseID int64) (*models.Exercise, error) {
	for i := range s.exercises {
		if s.exercises[i].ID == exerciseID {
			return &s.exercises[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newExerciseTestApp(exercises *stubExerciseStore, profiles *stubMorphotypeStore) *fiber.App {
	handler := NewExerciseHandler(exercises, profiles)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("role", "user")
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Get("/api/v1/exercises", handler.ListExercises)
	app.Get("/api/v1/exercises/:id/score", handler.GetExerciseScore)
	return app
}

func TestListExercisesWithoutProfileOmitsScores(t *testing.T) {
	store := &stubExerciseStore{
		exercises: []models.Exercise{{ID: 1, Name: "Back Squat", MuscleGroup: "legs"}},
		total:     1,
	}
	app := newExerciseTestApp(store, &stubMorphotypeStore{getErr: pgx.ErrNoRows})

	req := httptest.NewRequest("GET", "/api/v1/exercises", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Exercises  []scoredExerciseResponse `json:"exercises"`
		Pagination models.PaginationMeta    `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if len(payload.Exercises) != 1 {
		t.Fatalf("Expected 1 exercise, got %d", len(payload.Exercises))
	}
	if payload.Exercises[0].Score != nil || payload.Exercises[0].Band != nil {
		t.Errorf("Expected no score without a profile")
	}
	if payload.Pagination.Total != 1 {
		t.Errorf("Expected total 1, got %d", payload.Pagination.Total)
	}
}

func TestListExercisesWithProfileAttachesScoresAndBands(t *testing.T) {
	store := &stubExerciseStore{
		exercises: []models.Exercise{{ID: 1, Name: "Back Squat", MuscleGroup: "legs"}},
		total:     1,
	}
	profile := &models.MorphotypeProfile{
		Proportions: models.Proportions{FemurLength: models.LengthShort},
		Mobility:    models.Mobility{AnkleDorsiflexion: models.MobilityGood},
	}
	app := newExerciseTestApp(store, &stubMorphotypeStore{profile: profile})

	req := httptest.NewRequest("GET", "/api/v1/exercises?muscle_group=legs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Exercises []scoredExerciseResponse `json:"exercises"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if payload.Exercises[0].Score == nil || *payload.Exercises[0].Score != 74 {
		t.Errorf("Expected score 74 for two favorable matches, got %v", payload.Exercises[0].Score)
	}
	if payload.Exercises[0].Band == nil || payload.Exercises[0].Band.Label != "good_fit" {
		t.Errorf("Expected good_fit band, got %v", payload.Exercises[0].Band)
	}
	if store.lastGroup != "legs" {
		t.Errorf("Expected the muscle_group filter to reach the store, got %q", store.lastGroup)
	}
}

func TestGetExerciseScoreUnknownExercise(t *testing.T) {
	app := newExerciseTestApp(&stubExerciseStore{}, &stubMorphotypeStore{getErr: pgx.ErrNoRows})

	req := httptest.NewRequest("GET", "/api/v1/exercises/99/score", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestGetExerciseScoreWithoutProfileIsNeutral(t *testing.T) {
	store := &stubExerciseStore{
		exercises: []models.Exercise{{ID: 1, Name: "Back Squat", MuscleGroup: "legs"}},
	}
	app := newExerciseTestApp(store, &stubMorphotypeStore{getErr: pgx.ErrNoRows})

	req := httptest.NewRequest("GET", "/api/v1/exercises/1/score", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var payload struct {
		ExerciseID int64                `json:"exercise_id"`
		Score      models.ExerciseScore `json:"score"`
		Band       ScoreBand            `json:"band"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if payload.Score.Score != 50 {
		t.Errorf("Expected neutral score 50 without a profile, got %d", payload.Score.Score)
	}
	if payload.Band.Label != "neutral" {
		t.Errorf("Expected neutral band, got %s", payload.Band.Label)
	}
	if len(payload.Score.Cues) == 0 {
		t.Errorf("Expected cues even without a profile")
	}
}
