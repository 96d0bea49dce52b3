package repository

import (
	"context"
	"encoding/json"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

const exerciseColumns = `id, name, muscle_group, secondary_muscles, equipment, difficulty, recommendation, created_at`

func (r *ExerciseRepository) ListAll(ctx context.Context) ([]models.Exercise, error) {
	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		ORDER BY muscle_group, name
	`
	return r.list(ctx, query)
}

func (r *ExerciseRepository) ListByMuscleGroup(ctx context.Context, muscleGroup string, limit, offset int) ([]models.Exercise, error) {
	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE muscle_group = $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, muscleGroup, limit, offset)
}

func (r *ExerciseRepository) CountByMuscleGroup(ctx context.Context, muscleGroup string) (int, error) {
	query := `SELECT COUNT(*) FROM exercises WHERE muscle_group = $1`
	var total int
	if err := r.db.QueryRow(ctx, query, muscleGroup).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ExerciseRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM exercises`
	var total int
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ExerciseRepository) ListPage(ctx context.Context, limit, offset int) ([]models.Exercise, error) {
	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		ORDER BY muscle_group, name
		LIMIT $1 OFFSET $2
	`
	return r.list(ctx, query, limit, offset)
}

func (r *ExerciseRepository) GetByID(ctx context.Context, exerciseID int64) (*models.Exercise, error) {
	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE id = $1
	`

	var exercise models.Exercise
	var recommendation []byte
	err := r.db.QueryRow(ctx, query, exerciseID).Scan(
		&exercise.ID,
		&exercise.Name,
		&exercise.MuscleGroup,
		&exercise.SecondaryMuscles,
		&exercise.Equipment,
		&exercise.Difficulty,
		&recommendation,
		&exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := applyRecommendation(&exercise, recommendation); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) list(ctx context.Context, query string, args ...any) ([]models.Exercise, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		var recommendation []byte
		if err := rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.MuscleGroup,
			&exercise.SecondaryMuscles,
			&exercise.Equipment,
			&exercise.Difficulty,
			&recommendation,
			&exercise.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := applyRecommendation(&exercise, recommendation); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

// applyRecommendation decodes the curated recommendation JSONB. NULL means
// "no curated entry"; the category default is synthesized at scoring time,
// never stored back.
func applyRecommendation(exercise *models.Exercise, data []byte) error {
	if len(data) == 0 {
		exercise.Recommendation = nil
		return nil
	}
	var recommendation models.ExerciseRecommendation
	if err := json.Unmarshal(data, &recommendation); err != nil {
		return err
	}
	exercise.Recommendation = &recommendation
	return nil
}
