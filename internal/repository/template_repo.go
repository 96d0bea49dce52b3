package repository

import (
	"context"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

type CreateTemplateInput struct {
	UserID                   int64
	Name                     string
	Description              *string
	TargetMuscles            []string
	EstimatedDurationMinutes int
	Exercises                []CreateTemplateExerciseInput
}

type CreateTemplateExerciseInput struct {
	ExerciseID  int64
	OrderIndex  int
	TargetSets  int
	TargetReps  string
	RestSeconds int
	Notes       *string
}

type TemplateRepository struct {
	db DBTX
}

func NewTemplateRepository(db DBTX) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create inserts a template with its ordered exercise rows. Every save is a
// fresh template; there is no upsert against earlier programs.
func (r *TemplateRepository) Create(ctx context.Context, input CreateTemplateInput) (*models.WorkoutTemplate, error) {
	query := `
		INSERT INTO workout_templates (user_id, name, description, target_muscles, estimated_duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, description, target_muscles, estimated_duration_minutes, created_at
	`

	var template models.WorkoutTemplate
	err := r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.Name,
		input.Description,
		input.TargetMuscles,
		input.EstimatedDurationMinutes,
	).Scan(
		&template.ID,
		&template.UserID,
		&template.Name,
		&template.Description,
		&template.TargetMuscles,
		&template.EstimatedDurationMinutes,
		&template.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	exerciseQuery := `
		INSERT INTO template_exercises (template_id, exercise_id, order_index, target_sets, target_reps, rest_seconds, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	template.Exercises = make([]models.TemplateExercise, 0, len(input.Exercises))
	for _, exercise := range input.Exercises {
		entry := models.TemplateExercise{
			TemplateID:  template.ID,
			ExerciseID:  exercise.ExerciseID,
			OrderIndex:  exercise.OrderIndex,
			TargetSets:  exercise.TargetSets,
			TargetReps:  exercise.TargetReps,
			RestSeconds: exercise.RestSeconds,
			Notes:       exercise.Notes,
		}
		err := r.db.QueryRow(
			ctx,
			exerciseQuery,
			template.ID,
			exercise.ExerciseID,
			exercise.OrderIndex,
			exercise.TargetSets,
			exercise.TargetReps,
			exercise.RestSeconds,
			exercise.Notes,
		).Scan(&entry.ID)
		if err != nil {
			return nil, err
		}
		template.Exercises = append(template.Exercises, entry)
	}

	return &template, nil
}

func (r *TemplateRepository) ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutTemplate, error) {
	query := `
		SELECT id, user_id, name, description, target_muscles, estimated_duration_minutes, created_at
		FROM workout_templates
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]models.WorkoutTemplate, 0)
	for rows.Next() {
		var template models.WorkoutTemplate
		if err := rows.Scan(
			&template.ID,
			&template.UserID,
			&template.Name,
			&template.Description,
			&template.TargetMuscles,
			&template.EstimatedDurationMinutes,
			&template.CreatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range templates {
		exercises, err := r.listExercises(ctx, templates[i].ID)
		if err != nil {
			return nil, err
		}
		templates[i].Exercises = exercises
	}

	return templates, nil
}

func (r *TemplateRepository) listExercises(ctx context.Context, templateID int64) ([]models.TemplateExercise, error) {
	query := `
		SELECT id, template_id, exercise_id, order_index, target_sets, target_reps, rest_seconds, notes
		FROM template_exercises
		WHERE template_id = $1
		ORDER BY order_index
	`

	rows, err := r.db.Query(ctx, query, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.TemplateExercise, 0)
	for rows.Next() {
		var exercise models.TemplateExercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.TemplateID,
			&exercise.ExerciseID,
			&exercise.OrderIndex,
			&exercise.TargetSets,
			&exercise.TargetReps,
			&exercise.RestSeconds,
			&exercise.Notes,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
