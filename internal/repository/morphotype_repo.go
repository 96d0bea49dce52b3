package repository

import (
	"context"
	"encoding/json"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

// morphotypePayload is the JSONB document stored per profile. Keeping the
// structured groups (and the legacy block) in one document means retaking the
// questionnaire is a plain overwrite, never a column-by-column merge.
type morphotypePayload struct {
	GlobalType  string                   `json:"global_type"`
	Structure   models.Structure         `json:"structure"`
	Proportions models.Proportions       `json:"proportions"`
	Mobility    models.Mobility          `json:"mobility"`
	Insertions  models.Insertions        `json:"insertions"`
	Metabolism  models.Metabolism        `json:"metabolism"`
	Legacy      *models.LegacyMorphotype `json:"legacy,omitempty"`
}

type MorphotypeRepository struct {
	db DBTX
}

func NewMorphotypeRepository(db DBTX) *MorphotypeRepository {
	return &MorphotypeRepository{db: db}
}

func (r *MorphotypeRepository) GetByUserID(ctx context.Context, userID int64) (*models.MorphotypeProfile, error) {
	query := `
		SELECT id, user_id, data, created_at, updated_at
		FROM morphotype_profiles
		WHERE user_id = $1
	`

	var profile models.MorphotypeProfile
	var data []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&data,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := applyPayload(&profile, data); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert replaces the whole stored payload for the user. One profile per
// user, enforced by the unique index on user_id.
func (r *MorphotypeRepository) Upsert(ctx context.Context, userID int64, input *models.MorphotypeProfile) (*models.MorphotypeProfile, error) {
	payload := morphotypePayload{
		GlobalType:  input.GlobalType,
		Structure:   input.Structure,
		Proportions: input.Proportions,
		Mobility:    input.Mobility,
		Insertions:  input.Insertions,
		Metabolism:  input.Metabolism,
		Legacy:      input.Legacy,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO morphotype_profiles (user_id, data)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET data = EXCLUDED.data,
			updated_at = NOW()
		RETURNING id, user_id, data, created_at, updated_at
	`

	var profile models.MorphotypeProfile
	var stored []byte
	err = r.db.QueryRow(ctx, query, userID, data).Scan(
		&profile.ID,
		&profile.UserID,
		&stored,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := applyPayload(&profile, stored); err != nil {
		return nil, err
	}
	return &profile, nil
}

func applyPayload(profile *models.MorphotypeProfile, data []byte) error {
	var payload morphotypePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	profile.GlobalType = payload.GlobalType
	profile.Structure = payload.Structure
	profile.Proportions = payload.Proportions
	profile.Mobility = payload.Mobility
	profile.Insertions = payload.Insertions
	profile.Metabolism = payload.Metabolism
	profile.Legacy = payload.Legacy
	return nil
}
