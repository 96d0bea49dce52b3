package services

import (
	"strings"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

// categoryRule is one entry in the ordered default-recommendation table.
// Rules are evaluated top to bottom; the first one whose muscle-group and
// name-keyword conditions both hold wins. An empty condition matches anything.
type categoryRule struct {
	muscleGroups   []string
	keywords       []string
	recommendation models.ExerciseRecommendation
}

var categoryRules = []categoryRule{
	{
		keywords: []string{"squat", "leg press", "hack"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimFemurLength,
					Favorable:   []string{models.LengthShort},
					Unfavorable: []string{models.LengthLong},
				},
				{
					Dimension:   models.DimAnkleDorsiflexion,
					Favorable:   []string{models.MobilityGood},
					Unfavorable: []string{models.MobilityLimited},
				},
				{
					Dimension:   models.DimKneeValgus,
					Unfavorable: []string{models.ValgusPronounced},
				},
			},
			Modifications: []models.Modification{
				{
					Dimension: models.DimAnkleDorsiflexion,
					Condition: models.MobilityLimited,
					Advice:    "Elevate your heels on a small plate or wedge",
				},
				{
					Dimension: models.DimFemurLength,
					Condition: models.LengthLong,
					Advice:    "Widen your stance and allow more forward knee travel",
				},
				{
					Dimension: models.DimKneeValgus,
					Condition: models.ValgusPronounced,
					Advice:    "Use a light band above the knees to cue knees-out",
				},
			},
			Cues: []string{
				"Brace before you descend",
				"Drive the knees in line with the toes",
			},
		},
	},
	{
		keywords: []string{"deadlift", "rdl", "romanian", "good morning", "hip hinge"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimArmLength,
					Favorable:   []string{models.LengthLong},
					Unfavorable: []string{models.LengthShort},
				},
				{
					Dimension:   models.DimPosteriorChain,
					Favorable:   []string{models.MobilityGood},
					Unfavorable: []string{models.MobilityLimited},
				},
				{
					Dimension: models.DimTorsoLength,
					Favorable: []string{models.LengthShort},
				},
			},
			Modifications: []models.Modification{
				{
					Dimension: models.DimPosteriorChain,
					Condition: models.MobilityLimited,
					Advice:    "Pull from blocks or pins until your hinge range improves",
				},
				{
					Dimension: models.DimArmLength,
					Condition: models.LengthShort,
					Advice:    "Consider sumo stance to shorten the pulling range",
				},
			},
			Cues: []string{
				"Set your lats before breaking the floor",
				"Push the floor away rather than lifting the bar",
			},
		},
	},
	{
		keywords: []string{"overhead", "military", "shoulder press", "push press", "snatch", "jerk"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimWristMobility,
					Favorable:   []string{models.MobilityGood},
					Unfavorable: []string{models.MobilityLimited},
				},
				{
					Dimension: models.DimShoulderToHip,
					Favorable: []string{models.WidthWide},
				},
				{
					Dimension:   models.DimArmLength,
					Unfavorable: []string{models.LengthLong},
				},
			},
			Modifications: []models.Modification{
				{
					Dimension: models.DimWristMobility,
					Condition: models.MobilityLimited,
					Advice:    "Swap to a landmine press or neutral-grip dumbbells",
				},
			},
			Cues: []string{
				"Squeeze the glutes to keep the ribs down",
				"Finish with the bar over the mid-foot",
			},
		},
	},
	{
		keywords: []string{"bench", "dip", "push-up", "pushup", "chest press"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimArmLength,
					Favorable:   []string{models.LengthShort},
					Unfavorable: []string{models.LengthLong},
				},
				{
					Dimension: models.DimRibcageDepth,
					Favorable: []string{models.DepthDeep},
				},
				{
					Dimension:   models.DimChestInsertion,
					Favorable:   []string{models.InsertionLow},
					Unfavorable: []string{models.InsertionHigh},
				},
			},
			Modifications: []models.Modification{
				{
					Dimension: models.DimArmLength,
					Condition: models.LengthLong,
					Advice:    "Tuck the elbows slightly and stop an inch off the chest if the shoulders complain",
				},
			},
			Cues: []string{
				"Pull the bar apart to set the upper back",
				"Keep the feet planted and drive through the floor",
			},
		},
	},
	{
		keywords: []string{"lunge", "split squat", "step-up", "step up", "single-leg", "single leg", "pistol", "bulgarian"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension: models.DimFemurLength,
					Favorable: []string{models.LengthShort},
				},
				{
					Dimension:   models.DimKneeValgus,
					Unfavorable: []string{models.ValgusSlight, models.ValgusPronounced},
				},
			},
			Modifications: []models.Modification{
				{
					Dimension: models.DimKneeValgus,
					Condition: models.ValgusPronounced,
					Advice:    "Hold a rack or pole for balance and shorten the stride",
				},
			},
			Cues: []string{
				"Keep the front shin close to vertical",
				"Control the descent, drive through the whole foot",
			},
		},
	},
	{
		keywords: []string{"pull-up", "pullup", "chin-up", "chinup", "pulldown", "row"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension: models.DimShoulderToHip,
					Favorable: []string{models.WidthWide},
				},
				{
					Dimension:   models.DimArmLength,
					Unfavorable: []string{models.LengthLong},
				},
			},
			Modifications: []models.Modification{
				{
					Dimension: models.DimWristMobility,
					Condition: models.MobilityLimited,
					Advice:    "Use a neutral grip or rings to unload the wrists",
				},
			},
			Cues: []string{
				"Lead with the elbows, not the hands",
				"Pause briefly at peak contraction",
			},
		},
	},
	{
		muscleGroups: []string{"biceps", "arms"},
		keywords:     []string{"curl"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimBicepsInsertion,
					Favorable:   []string{models.InsertionLow},
					Unfavorable: []string{models.InsertionHigh},
				},
			},
			Cues: []string{
				"Keep the elbows pinned to your sides",
				"Supinate hard at the top",
			},
		},
	},
	{
		keywords: []string{"calf", "calves"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimCalvesInsertion,
					Favorable:   []string{models.InsertionLow},
					Unfavorable: []string{models.InsertionHigh},
				},
				{
					Dimension: models.DimAnkleDorsiflexion,
					Favorable: []string{models.MobilityGood},
				},
			},
			Cues: []string{
				"Full stretch at the bottom, pause at the top",
			},
		},
	},
	{
		muscleGroups: []string{"legs"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimAnkleDorsiflexion,
					Unfavorable: []string{models.MobilityLimited},
				},
				{
					Dimension:   models.DimKneeValgus,
					Unfavorable: []string{models.ValgusPronounced},
				},
			},
			Cues: []string{
				"Own the bottom position before adding load",
			},
		},
	},
	{
		muscleGroups: []string{"back"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimPosteriorChain,
					Unfavorable: []string{models.MobilityLimited},
				},
			},
			Cues: []string{
				"Keep a neutral spine throughout",
			},
		},
	},
	{
		muscleGroups: []string{"shoulders"},
		recommendation: models.ExerciseRecommendation{
			Impacts: []models.ImpactRule{
				{
					Dimension:   models.DimWristMobility,
					Unfavorable: []string{models.MobilityLimited},
				},
			},
			Cues: []string{
				"Move through a pain-free range only",
			},
		},
	},
	// Catch-all. Must stay non-empty so an unknown exercise still produces a
	// plausible neutral recommendation instead of a crash or a zero score.
	{
		recommendation: models.ExerciseRecommendation{
			Cues: []string{
				"Control the eccentric",
				"Use the longest range of motion you can control",
			},
		},
	},
}

// DefaultRecommendation synthesizes a recommendation for an exercise that has
// no curated entry, from its muscle group and name keywords.
func DefaultRecommendation(exercise models.Exercise) *models.ExerciseRecommendation {
	name := strings.ToLower(exercise.Name)
	group := normalizeValue(exercise.MuscleGroup)

	for i := range categoryRules {
		rule := &categoryRules[i]
		if !matchesMuscleGroup(rule.muscleGroups, group) {
			continue
		}
		if !matchesKeyword(rule.keywords, name) {
			continue
		}
		rec := rule.recommendation
		return &rec
	}

	// Unreachable while the table ends with a catch-all, kept as a guard.
	return &models.ExerciseRecommendation{}
}

// RecommendationFor returns the curated recommendation when present, the
// category default otherwise.
func RecommendationFor(exercise models.Exercise) *models.ExerciseRecommendation {
	if exercise.Recommendation != nil {
		return exercise.Recommendation
	}
	return DefaultRecommendation(exercise)
}

func matchesMuscleGroup(groups []string, group string) bool {
	if len(groups) == 0 {
		return true
	}
	for _, candidate := range groups {
		if normalizeValue(candidate) == group {
			return true
		}
	}
	return false
}

func matchesKeyword(keywords []string, name string) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
