package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

type stubMorphotypeStore struct {
	profile    *models.MorphotypeProfile
	getErr     error
	upsertErr  error
	lastUpsert *models.MorphotypeProfile
	lastUserID int64
}

func (s *stubMorphotypeStore) GetByUserID(_ context.Context, userID int64) (*models.MorphotypeProfile, error) {
	s.lastUserID = userID
	return s.profile, s.getErr
}

func (s *stubMorphotypeStore) Upsert(
	_ context.Context,
	userID int64,
	input *models.MorphotypeProfile,
) (*models.MorphotypeProfile, error) {
	s.lastUserID = userID
	s.lastUpsert = input
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}
	saved := *input
	saved.ID = 1
	saved.UserID = userID
	return &saved, nil
}

func newMorphotypeTestApp(store *stubMorphotypeStore, role string) *fiber.App {
	handler := NewMorphotypeHandler(store)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("role", role)
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Get("/api/v1/morphotype", handler.GetMorphotype)
	app.Put("/api/v1/morphotype", handler.UpdateMorphotype)
	return app
}

func TestGetMorphotypeNotCompleted(t *testing.T) {
	store := &stubMorphotypeStore{getErr: pgx.ErrNoRows}
	app := newMorphotypeTestApp(store, "user")

	req := httptest.NewRequest("GET", "/api/v1/morphotype", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404 before the questionnaire, got %d", resp.StatusCode)
	}
}

func TestGetMorphotypeReturnsProfile(t *testing.T) {
	store := &stubMorphotypeStore{
		profile: &models.MorphotypeProfile{
			ID:         1,
			UserID:     42,
			GlobalType: models.GlobalTypeLongiligne,
		},
	}
	app := newMorphotypeTestApp(store, "user")

	req := httptest.NewRequest("GET", "/api/v1/morphotype", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Profile models.MorphotypeProfile `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}
	if payload.Profile.GlobalType != models.GlobalTypeLongiligne {
		t.Errorf("Expected longiligne, got %s", payload.Profile.GlobalType)
	}
	if store.lastUserID != 42 {
		t.Errorf("Expected user id 42, got %d", store.lastUserID)
	}
}

func TestUpdateMorphotypeAcceptsPartialAnswers(t *testing.T) {
	store := &stubMorphotypeStore{}
	app := newMorphotypeTestApp(store, "user")

	body, _ := json.Marshal(morphotypeRequest{
		GlobalType: models.GlobalTypeBreviligne,
		Proportions: models.Proportions{
			FemurLength: models.LengthShort,
		},
	})
	req := httptest.NewRequest("PUT", "/api/v1/morphotype", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if store.lastUpsert == nil || store.lastUpsert.Proportions.FemurLength != models.LengthShort {
		t.Errorf("Expected the answered fields to be forwarded")
	}
	if store.lastUpsert.Mobility.AnkleDorsiflexion != "" {
		t.Errorf("Expected unanswered fields to stay empty in storage")
	}
}

func TestUpdateMorphotypeRejectsUnknownValue(t *testing.T) {
	app := newMorphotypeTestApp(&stubMorphotypeStore{}, "user")

	body, _ := json.Marshal(morphotypeRequest{
		Proportions: models.Proportions{FemurLength: "gigantic"},
	})
	req := httptest.NewRequest("PUT", "/api/v1/morphotype", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected status 400 for an unknown value, got %d", resp.StatusCode)
	}
}

func TestUpdateMorphotypeRejectsNonUserRole(t *testing.T) {
	app := newMorphotypeTestApp(&stubMorphotypeStore{}, "coach")

	body, _ := json.Marshal(morphotypeRequest{})
	req := httptest.NewRequest("PUT", "/api/v1/morphotype", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("Expected status 403, got %d", resp.StatusCode)
	}
}
