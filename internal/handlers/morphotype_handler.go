package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

type morphotypeStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.MorphotypeProfile, error)
	Upsert(ctx context.Context, userID int64, input *models.MorphotypeProfile) (*models.MorphotypeProfile, error)
}

type MorphotypeHandler struct {
	morphotypeRepo morphotypeStore
}

func NewMorphotypeHandler(morphotypeRepo morphotypeStore) *MorphotypeHandler {
	return &MorphotypeHandler{morphotypeRepo: morphotypeRepo}
}

type morphotypeRequest struct {
	GlobalType  string                   `json:"global_type"`
	Structure   models.Structure         `json:"structure"`
	Proportions models.Proportions       `json:"proportions"`
	Mobility    models.Mobility          `json:"mobility"`
	Insertions  models.Insertions        `json:"insertions"`
	Metabolism  models.Metabolism        `json:"metabolism"`
	Legacy      *models.LegacyMorphotype `json:"legacy,omitempty"`
}

func (h *MorphotypeHandler) GetMorphotype(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.morphotypeRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"error": "Morphotype questionnaire not completed"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to fetch morphotype profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

// UpdateMorphotype stores the questionnaire result as a full overwrite.
// Unanswered fields are allowed; they stay empty in storage and resolve to
// neutral defaults at scoring time.
func (h *MorphotypeHandler) UpdateMorphotype(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req morphotypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateMorphotypeRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.morphotypeRepo.Upsert(c.Context(), userID, &models.MorphotypeProfile{
		GlobalType:  req.GlobalType,
		Structure:   req.Structure,
		Proportions: req.Proportions,
		Mobility:    req.Mobility,
		Insertions:  req.Insertions,
		Metabolism:  req.Metabolism,
		Legacy:      req.Legacy,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to save morphotype profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func parseUserID(c *fiber.Ctx) (int64, error) {
	userIDValue := c.Locals("user_id")
	userIDStr, ok := userIDValue.(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}
