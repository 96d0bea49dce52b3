package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
	"github.com/adrien-rx/MorphoFitBack/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// Program generation policy. The no-profile score is deliberately higher than
// the scoring engine's baseline: without morphology data, generation assumes a
// generic good fit so it biases toward inclusion.
const (
	noProfileScore = 70

	minViableCandidates = 3

	leverageMinScore = 55
	fixMinScore      = 40
	fixMaxScore      = 75
	strongFitScore   = 70
	correctiveScore  = 60
	maxSetsPerLift   = 6
	minSetsPerLift   = 2
	fullBodyMaxLifts = 8
	defaultMaxLifts  = 6
	minutesPerLift   = 8
)

type splitDay struct {
	name    string
	muscles []string
}

var splitDayTemplates = map[string][]splitDay{
	models.SplitFullBody: {
		{name: "Full Body A", muscles: []string{"legs", "chest", "back", "shoulders", "core"}},
		{name: "Full Body B", muscles: []string{"legs", "back", "chest", "biceps", "triceps"}},
		{name: "Full Body C", muscles: []string{"legs", "chest", "back", "shoulders", "calves", "core"}},
		{name: "Full Body D", muscles: []string{"legs", "back", "chest", "biceps", "triceps", "core"}},
		{name: "Full Body E", muscles: []string{"legs", "chest", "back", "shoulders", "calves"}},
		{name: "Full Body F", muscles: []string{"legs", "back", "chest", "core"}},
	},
	models.SplitPushPullLegs: {
		{name: "Push A", muscles: []string{"chest", "shoulders", "triceps"}},
		{name: "Pull A", muscles: []string{"back", "biceps", "core"}},
		{name: "Legs A", muscles: []string{"legs", "calves", "core"}},
		{name: "Push B", muscles: []string{"shoulders", "chest", "triceps"}},
		{name: "Pull B", muscles: []string{"back", "biceps"}},
		{name: "Legs B", muscles: []string{"legs", "calves"}},
		{name: "Full Body", muscles: []string{"legs", "chest", "back"}},
	},
	models.SplitUpperLower: {
		{name: "Upper A", muscles: []string{"chest", "back", "shoulders", "biceps", "triceps"}},
		{name: "Lower A", muscles: []string{"legs", "calves", "core"}},
		{name: "Upper B", muscles: []string{"back", "chest", "shoulders", "triceps", "biceps"}},
		{name: "Lower B", muscles: []string{"legs", "calves", "core"}},
		{name: "Upper C", muscles: []string{"chest", "back", "shoulders"}},
		{name: "Lower C", muscles: []string{"legs", "calves"}},
	},
	models.SplitBroSplit: {
		{name: "Chest Day", muscles: []string{"chest"}},
		{name: "Back Day", muscles: []string{"back"}},
		{name: "Shoulder Day", muscles: []string{"shoulders"}},
		{name: "Leg Day", muscles: []string{"legs", "calves"}},
		{name: "Arm Day", muscles: []string{"biceps", "triceps", "core"}},
	},
}

// SplitMinimumDays is the lowest sensible days_per_week per split. The
// generator itself never enforces it (it simply truncates); config validation
// at the API boundary does.
var SplitMinimumDays = map[string]int{
	models.SplitFullBody:     2,
	models.SplitPushPullLegs: 3,
	models.SplitUpperLower:   2,
	models.SplitBroSplit:     4,
}

var perMuscleCaps = map[string]int{
	models.SplitFullBody:     1,
	models.SplitPushPullLegs: 2,
	models.SplitUpperLower:   2,
	models.SplitBroSplit:     4,
}

type goalScheme struct {
	Sets        int
	Reps        string
	RestSeconds int
	Tempo       string
}

// Static domain knowledge, not computed.
var goalSchemes = map[string]goalScheme{
	models.GoalStrength:      {Sets: 5, Reps: "3-5", RestSeconds: 180},
	models.GoalHypertrophy:   {Sets: 4, Reps: "8-12", RestSeconds: 90, Tempo: "3-1-1"},
	models.GoalMetabolic:     {Sets: 3, Reps: "15-20", RestSeconds: 45},
	models.GoalPowerbuilding: {Sets: 4, Reps: "5-8", RestSeconds: 120},
	models.GoalAthletic:      {Sets: 4, Reps: "4-6", RestSeconds: 90, Tempo: "X-1-1 (explosive concentric)"},
	models.GoalRecomposition: {Sets: 3, Reps: "10-15", RestSeconds: 60},
}

type scoredExercise struct {
	exercise models.Exercise
	score    models.ExerciseScore
}

// GenerateProgram assembles a multi-day program for a profile (which may be
// nil) from the given catalog. It is total: unknown config values degrade to
// empty or default selections, never to an error.
func GenerateProgram(profile *models.MorphotypeProfile, catalog []models.Exercise, config models.ProgramConfig) models.GeneratedProgram {
	days := splitDayTemplates[config.Split]
	if config.DaysPerWeek > 0 && config.DaysPerWeek < len(days) {
		days = days[:config.DaysPerWeek]
	}

	scheme, ok := goalSchemes[config.Goal]
	if !ok {
		scheme = goalSchemes[models.GoalHypertrophy]
	}

	workouts := make([]models.GeneratedWorkout, 0, len(days))
	for _, day := range days {
		workouts = append(workouts, buildWorkout(profile, catalog, day, config, scheme))
	}

	return models.GeneratedProgram{
		Config:   config,
		Workouts: workouts,
	}
}

func buildWorkout(
	profile *models.MorphotypeProfile,
	catalog []models.Exercise,
	day splitDay,
	config models.ProgramConfig,
	scheme goalScheme,
) models.GeneratedWorkout {
	pool := scoreDayPool(profile, catalog, day.muscles)
	ranked := rankByApproach(pool, config.Approach)

	muscleCap := perMuscleCaps[config.Split]
	if muscleCap == 0 {
		muscleCap = 2
	}
	maxLifts := defaultMaxLifts
	if config.Split == models.SplitFullBody {
		maxLifts = fullBodyMaxLifts
	}

	perMuscle := make(map[string]int)
	exercises := make([]models.ProgramExercise, 0, maxLifts)
	for _, candidate := range ranked {
		if len(exercises) >= maxLifts {
			break
		}
		group := normalizeValue(candidate.exercise.MuscleGroup)
		if perMuscle[group] >= muscleCap {
			continue
		}
		perMuscle[group]++
		exercises = append(exercises, buildProgramExercise(candidate, config, scheme))
	}

	return models.GeneratedWorkout{
		Name:          day.name,
		TargetMuscles: day.muscles,
		Exercises:     exercises,
	}
}

func scoreDayPool(profile *models.MorphotypeProfile, catalog []models.Exercise, muscles []string) []scoredExercise {
	targets := make(map[string]struct{}, len(muscles))
	for _, muscle := range muscles {
		targets[normalizeValue(muscle)] = struct{}{}
	}

	pool := make([]scoredExercise, 0, len(catalog))
	for _, exercise := range catalog {
		if _, ok := targets[normalizeValue(exercise.MuscleGroup)]; !ok {
			continue
		}
		pool = append(pool, scoredExercise{
			exercise: exercise,
			score:    scoreForGeneration(profile, exercise),
		})
	}
	return pool
}

func scoreForGeneration(profile *models.MorphotypeProfile, exercise models.Exercise) models.ExerciseScore {
	if profile == nil {
		// No morphology data: assume a generic good fit rather than running
		// the engine against an all-default profile.
		return models.ExerciseScore{
			Score:         noProfileScore,
			Advantages:    []string{},
			Disadvantages: []string{},
			Modifications: []string{},
			Cues:          RecommendationFor(exercise).Cues,
		}
	}
	return ScoreExercise(profile, RecommendationFor(exercise))
}

// rankByApproach applies the approach's filter and ordering. If the filter
// starves the pool below the viable minimum it is discarded and the whole
// muscle-filtered pool is used, best fit first: a day must never end up
// without exercises when the catalog has them.
func rankByApproach(pool []scoredExercise, approach string) []scoredExercise {
	var filtered []scoredExercise
	ascending := false

	switch approach {
	case models.ApproachLeverageStrengths:
		filtered = filterByScore(pool, leverageMinScore, scoreMax)
	case models.ApproachFixWeaknesses:
		filtered = filterByScore(pool, fixMinScore, fixMaxScore)
		ascending = true
	default:
		filtered = append([]scoredExercise(nil), pool...)
	}

	if len(filtered) < minViableCandidates && len(filtered) < len(pool) {
		filtered = append([]scoredExercise(nil), pool...)
		ascending = false
	}

	sortByScore(filtered, ascending)
	return filtered
}

func filterByScore(pool []scoredExercise, min, max int) []scoredExercise {
	filtered := make([]scoredExercise, 0, len(pool))
	for _, candidate := range pool {
		if candidate.score.Score >= min && candidate.score.Score <= max {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

func sortByScore(pool []scoredExercise, ascending bool) {
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].score.Score == pool[j].score.Score {
			return pool[i].exercise.Name < pool[j].exercise.Name
		}
		if ascending {
			return pool[i].score.Score < pool[j].score.Score
		}
		return pool[i].score.Score > pool[j].score.Score
	})
}

func buildProgramExercise(candidate scoredExercise, config models.ProgramConfig, scheme goalScheme) models.ProgramExercise {
	score := candidate.score.Score

	sets := scheme.Sets
	if config.Approach == models.ApproachFixWeaknesses && score < correctiveScore && sets < maxSetsPerLift {
		sets++
	}
	if score < scoreBaseline && sets > minSetsPerLift {
		sets--
	}

	notes := make([]string, 0, 4+len(candidate.score.Modifications)+len(candidate.score.Cues))
	if config.Approach == models.ApproachLeverageStrengths && score >= strongFitScore {
		notes = append(notes, "Morphological strong point: push the intensity here")
	}
	if config.Approach == models.ApproachFixWeaknesses && score < correctiveScore {
		notes = append(notes, "Corrective focus: extra volume at controlled tempo, leave a rep in reserve")
	}
	if score < scoreBaseline {
		notes = append(notes, "Below-average leverages for this movement, volume trimmed")
	}
	if scheme.Tempo != "" {
		notes = append(notes, fmt.Sprintf("Tempo %s", scheme.Tempo))
	}
	notes = append(notes, candidate.score.Modifications...)
	notes = append(notes, candidate.score.Cues...)

	return models.ProgramExercise{
		Exercise:    candidate.exercise,
		Sets:        sets,
		Reps:        scheme.Reps,
		RestSeconds: scheme.RestSeconds,
		MorphoScore: score,
		Notes:       notes,
	}
}

type morphotypeReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.MorphotypeProfile, error)
}

type exerciseCatalogReader interface {
	ListAll(ctx context.Context) ([]models.Exercise, error)
}

type templateStore interface {
	Create(ctx context.Context, input repository.CreateTemplateInput) (*models.WorkoutTemplate, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutTemplate, error)
}

type ProgramService struct {
	morphotypeRepo morphotypeReader
	exerciseRepo   exerciseCatalogReader
	templateRepo   templateStore
}

func NewProgramService(
	morphotypeRepo morphotypeReader,
	exerciseRepo exerciseCatalogReader,
	templateRepo templateStore,
) *ProgramService {
	return &ProgramService{
		morphotypeRepo: morphotypeRepo,
		exerciseRepo:   exerciseRepo,
		templateRepo:   templateRepo,
	}
}

// GenerateForUser loads the user's morphotype (absence is not an error) and
// the exercise catalog, then runs the pure generator.
func (s *ProgramService) GenerateForUser(
	ctx context.Context,
	userID int64,
	config models.ProgramConfig,
) (*models.GeneratedProgram, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}

	profile, err := s.morphotypeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		profile = nil
	}

	catalog, err := s.exerciseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	program := GenerateProgram(profile, catalog, config)
	return &program, nil
}

// SaveProgramAsTemplates persists each generated workout as a fresh named
// template. There is no upsert against previously saved programs.
func (s *ProgramService) SaveProgramAsTemplates(
	ctx context.Context,
	userID int64,
	program models.GeneratedProgram,
) ([]int64, error) {
	if userID <= 0 || len(program.Workouts) == 0 {
		return nil, ErrInvalidInput
	}

	description := fmt.Sprintf(
		"Generated %s program, %s split, %s approach",
		program.Config.Goal, program.Config.Split, program.Config.Approach,
	)

	ids := make([]int64, 0, len(program.Workouts))
	for _, workout := range program.Workouts {
		input := repository.CreateTemplateInput{
			UserID:                   userID,
			Name:                     workout.Name,
			Description:              &description,
			TargetMuscles:            workout.TargetMuscles,
			EstimatedDurationMinutes: len(workout.Exercises) * minutesPerLift,
		}
		for i, exercise := range workout.Exercises {
			var notes *string
			if len(exercise.Notes) > 0 {
				joined := strings.Join(exercise.Notes, " | ")
				notes = &joined
			}
			input.Exercises = append(input.Exercises, repository.CreateTemplateExerciseInput{
				ExerciseID:  exercise.Exercise.ID,
				OrderIndex:  i,
				TargetSets:  exercise.Sets,
				TargetReps:  exercise.Reps,
				RestSeconds: exercise.RestSeconds,
				Notes:       notes,
			})
		}

		template, err := s.templateRepo.Create(ctx, input)
		if err != nil {
			return nil, err
		}
		ids = append(ids, template.ID)
	}

	return ids, nil
}

func (s *ProgramService) ListTemplates(ctx context.Context, userID int64) ([]models.WorkoutTemplate, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.templateRepo.ListByUserID(ctx, userID)
}
