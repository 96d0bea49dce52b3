package services

import (
	"testing"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

func TestDefaultRecommendationKeywordRules(t *testing.T) {
	tests := []struct {
		name          string
		exercise      models.Exercise
		wantFirstDim  string
		wantImpactLen int
	}{
		{
			name:          "squat family",
			exercise:      models.Exercise{Name: "Back Squat", MuscleGroup: "legs"},
			wantFirstDim:  models.DimFemurLength,
			wantImpactLen: 3,
		},
		{
			name:          "hinge family",
			exercise:      models.Exercise{Name: "Romanian Deadlift", MuscleGroup: "legs"},
			wantFirstDim:  models.DimArmLength,
			wantImpactLen: 3,
		},
		{
			name:          "overhead family",
			exercise:      models.Exercise{Name: "Overhead Press", MuscleGroup: "shoulders"},
			wantFirstDim:  models.DimWristMobility,
			wantImpactLen: 3,
		},
		{
			name:          "press family",
			exercise:      models.Exercise{Name: "Bench Press", MuscleGroup: "chest"},
			wantFirstDim:  models.DimArmLength,
			wantImpactLen: 3,
		},
		{
			name:          "pull family",
			exercise:      models.Exercise{Name: "Lat Pulldown", MuscleGroup: "back"},
			wantFirstDim:  models.DimShoulderToHip,
			wantImpactLen: 2,
		},
		{
			name:          "curl by muscle group",
			exercise:      models.Exercise{Name: "Incline Dumbbell Curl", MuscleGroup: "biceps"},
			wantFirstDim:  models.DimBicepsInsertion,
			wantImpactLen: 1,
		},
		{
			name:          "calf family",
			exercise:      models.Exercise{Name: "Standing Calf Raise", MuscleGroup: "calves"},
			wantFirstDim:  models.DimCalvesInsertion,
			wantImpactLen: 2,
		},
	}

	for _, tt := range tests {
		rec := DefaultRecommendation(tt.exercise)
		if rec == nil {
			t.Fatalf("%s: expected a recommendation, got nil", tt.name)
		}
		if len(rec.Impacts) != tt.wantImpactLen {
			t.Errorf("%s: expected %d impacts, got %d", tt.name, tt.wantImpactLen, len(rec.Impacts))
			continue
		}
		if rec.Impacts[0].Dimension != tt.wantFirstDim {
			t.Errorf("%s: expected first impact on %s, got %s", tt.name, tt.wantFirstDim, rec.Impacts[0].Dimension)
		}
	}
}

// "Bulgarian Split Squat" matches both the squat rule and the single-leg rule;
// the table is ordered and the squat rule comes first.
func TestDefaultRecommendationRulePrecedence(t *testing.T) {
	rec := DefaultRecommendation(models.Exercise{Name: "Bulgarian Split Squat", MuscleGroup: "legs"})
	if len(rec.Impacts) != 3 {
		t.Fatalf("Expected the squat rule (3 impacts) to win, got %d impacts", len(rec.Impacts))
	}
	if rec.Impacts[1].Dimension != models.DimAnkleDorsiflexion {
		t.Errorf("Expected squat rule impacts, got %s", rec.Impacts[1].Dimension)
	}
}

func TestDefaultRecommendationMuscleGroupFallback(t *testing.T) {
	rec := DefaultRecommendation(models.Exercise{Name: "Leg Extension", MuscleGroup: "legs"})
	if len(rec.Impacts) != 2 {
		t.Fatalf("Expected the legs fallback rule, got %d impacts", len(rec.Impacts))
	}
	if rec.Impacts[0].Dimension != models.DimAnkleDorsiflexion {
		t.Errorf("Expected ankle impact first, got %s", rec.Impacts[0].Dimension)
	}
}

func TestDefaultRecommendationCatchAllHasCues(t *testing.T) {
	rec := DefaultRecommendation(models.Exercise{Name: "Farmer Carry", MuscleGroup: "core"})
	if len(rec.Impacts) != 0 {
		t.Errorf("Expected no impacts from the catch-all, got %d", len(rec.Impacts))
	}
	if len(rec.Cues) == 0 {
		t.Errorf("Expected the catch-all to carry cues")
	}
}

func TestRecommendationForPrefersCurated(t *testing.T) {
	curated := &models.ExerciseRecommendation{
		Cues: []string{"Curated cue"},
	}
	exercise := models.Exercise{Name: "Back Squat", MuscleGroup: "legs", Recommendation: curated}

	if got := RecommendationFor(exercise); got != curated {
		t.Errorf("Expected the curated recommendation to win over the category default")
	}
}
