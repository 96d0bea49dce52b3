package models

import "time"

// Program generation vocabulary.
const (
	GoalStrength      = "strength"
	GoalHypertrophy   = "hypertrophy"
	GoalMetabolic     = "metabolic"
	GoalPowerbuilding = "powerbuilding"
	GoalAthletic      = "athletic"
	GoalRecomposition = "recomposition"

	ApproachLeverageStrengths = "leverage_strengths"
	ApproachFixWeaknesses     = "fix_weaknesses"
	ApproachBalanced          = "balanced"

	SplitFullBody     = "full_body"
	SplitPushPullLegs = "push_pull_legs"
	SplitUpperLower   = "upper_lower"
	SplitBroSplit     = "bro_split"
)

type ProgramConfig struct {
	Goal        string `json:"goal"`
	Approach    string `json:"approach"`
	Split       string `json:"split"`
	DaysPerWeek int    `json:"days_per_week"`
}

type ProgramExercise struct {
	Exercise    Exercise `json:"exercise"`
	Sets        int      `json:"sets"`
	Reps        string   `json:"reps"`
	RestSeconds int      `json:"rest_seconds"`
	MorphoScore int      `json:"morpho_score"`
	Notes       []string `json:"notes,omitempty"`
}

type GeneratedWorkout struct {
	Name          string            `json:"name"`
	TargetMuscles []string          `json:"target_muscles"`
	Exercises     []ProgramExercise `json:"exercises"`
}

// GeneratedProgram is ephemeral until explicitly saved as templates.
type GeneratedProgram struct {
	Config   ProgramConfig      `json:"config"`
	Workouts []GeneratedWorkout `json:"workouts"`
}

type WorkoutTemplate struct {
	ID                       int64              `json:"id"`
	UserID                   int64              `json:"user_id"`
	Name                     string             `json:"name"`
	Description              *string            `json:"description,omitempty"`
	TargetMuscles            []string           `json:"target_muscles"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes"`
	Exercises                []TemplateExercise `json:"exercises"`
	CreatedAt                time.Time          `json:"created_at"`
}

type TemplateExercise struct {
	ID          int64   `json:"id"`
	TemplateID  int64   `json:"template_id"`
	ExerciseID  int64   `json:"exercise_id"`
	OrderIndex  int     `json:"order_index"`
	TargetSets  int     `json:"target_sets"`
	TargetReps  string  `json:"target_reps"`
	RestSeconds int     `json:"rest_seconds"`
	Notes       *string `json:"notes,omitempty"`
}
