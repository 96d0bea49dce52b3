package services

import (
	"fmt"
	"strings"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
)

// Scoring weights. The baseline means "no morphological opinion"; unfavorable
// matches outweigh favorable ones because a structural disadvantage is rarely
// fully compensable.
const (
	scoreBaseline     = 50
	favorableWeight   = 12
	unfavorableWeight = 15
	scoreMin          = 0
	scoreMax          = 100
)

var dimensionLabels = map[string]string{
	models.DimGlobalType:        "overall build",
	models.DimFrameSize:         "frame size",
	models.DimShoulderToHip:     "shoulder-to-hip ratio",
	models.DimRibcageDepth:      "ribcage depth",
	models.DimTorsoLength:       "torso length",
	models.DimArmLength:         "arm length",
	models.DimFemurLength:       "femur length",
	models.DimKneeValgus:        "knee alignment",
	models.DimAnkleDorsiflexion: "ankle mobility",
	models.DimPosteriorChain:    "posterior chain mobility",
	models.DimWristMobility:     "wrist mobility",
	models.DimBicepsInsertion:   "biceps insertion",
	models.DimCalvesInsertion:   "calf insertion",
	models.DimChestInsertion:    "chest insertion",
	models.DimWeightTendency:    "weight tendency",
	models.DimNaturalStrength:   "natural strength",
}

// ResolveProfile flattens a possibly partial (or nil) profile into a fully
// defaulted dimension→value map. Legacy ecto/meso/endo profiles contribute
// structural priors only for dimensions the structural payload leaves unset.
func ResolveProfile(profile *models.MorphotypeProfile) map[string]string {
	raw := profile.DimensionValues()
	priors := legacyPriors(profile)

	resolved := make(map[string]string, len(models.DimensionDefaults))
	for dim, neutral := range models.DimensionDefaults {
		value := normalizeValue(raw[dim])
		if value == "" {
			value = priors[dim]
		}
		if value == "" {
			value = neutral
		}
		resolved[dim] = value
	}
	return resolved
}

// ScoreExercise evaluates one recommendation against one profile. It is total:
// nil profile, nil recommendation, and empty impact maps all yield a
// well-formed neutral result.
func ScoreExercise(profile *models.MorphotypeProfile, rec *models.ExerciseRecommendation) models.ExerciseScore {
	resolved := ResolveProfile(profile)

	score := scoreBaseline
	advantages := []string{}
	disadvantages := []string{}
	modifications := []string{}
	cues := []string{}

	if rec != nil {
		for _, rule := range rec.Impacts {
			value, ok := resolved[rule.Dimension]
			if !ok {
				continue
			}
			// A value sitting on the dimension's neutral default carries no
			// signal either way; this keeps partial profiles at baseline.
			if value == models.DimensionDefaults[rule.Dimension] {
				continue
			}
			switch {
			case containsValue(rule.Favorable, value):
				score += favorableWeight
				advantages = append(advantages, describeMatch(rule, value, true))
			case containsValue(rule.Unfavorable, value):
				score -= unfavorableWeight
				disadvantages = append(disadvantages, describeMatch(rule, value, false))
			}
		}

		for _, mod := range rec.Modifications {
			value, ok := resolved[mod.Dimension]
			if !ok || value != normalizeValue(mod.Condition) {
				continue
			}
			if value == models.DimensionDefaults[mod.Dimension] {
				continue
			}
			modifications = append(modifications, mod.Advice)
		}

		// Cues are generic technique reminders, shown regardless of fit.
		cues = append(cues, rec.Cues...)
	}

	return models.ExerciseScore{
		Score:         clampScore(score),
		Advantages:    advantages,
		Disadvantages: disadvantages,
		Modifications: modifications,
		Cues:          cues,
	}
}

func legacyPriors(profile *models.MorphotypeProfile) map[string]string {
	if profile == nil || profile.Legacy == nil {
		return nil
	}

	switch normalizeValue(profile.Legacy.Primary) {
	case "ectomorph", "ecto":
		return map[string]string{
			models.DimGlobalType:      models.GlobalTypeLongiligne,
			models.DimFrameSize:       models.FrameFine,
			models.DimArmLength:       models.LengthLong,
			models.DimFemurLength:     models.LengthLong,
			models.DimWeightTendency:  models.TendencyLean,
			models.DimNaturalStrength: models.StrengthBelowAverage,
		}
	case "endomorph", "endo":
		return map[string]string{
			models.DimGlobalType:     models.GlobalTypeBreviligne,
			models.DimFrameSize:      models.FrameLarge,
			models.DimRibcageDepth:   models.DepthDeep,
			models.DimArmLength:      models.LengthShort,
			models.DimFemurLength:    models.LengthShort,
			models.DimWeightTendency: models.TendencyGainProne,
		}
	case "mesomorph", "meso":
		return map[string]string{
			models.DimGlobalType:      models.GlobalTypeBalanced,
			models.DimShoulderToHip:   models.WidthWide,
			models.DimNaturalStrength: models.StrengthAboveAverage,
		}
	default:
		return nil
	}
}

func describeMatch(rule models.ImpactRule, value string, favorable bool) string {
	if rule.Summary != "" {
		return rule.Summary
	}

	label, ok := dimensionLabels[rule.Dimension]
	if !ok {
		label = strings.ReplaceAll(rule.Dimension, "_", " ")
	}
	readable := strings.ReplaceAll(value, "_", " ")
	if favorable {
		return fmt.Sprintf("Your %s (%s) gives you good leverage on this movement", label, readable)
	}
	return fmt.Sprintf("Your %s (%s) works against you on this movement", label, readable)
}

func containsValue(values []string, target string) bool {
	for _, value := range values {
		if normalizeValue(value) == target {
			return true
		}
	}
	return false
}

func normalizeValue(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	value = strings.ReplaceAll(value, " ", "_")
	value = strings.ReplaceAll(value, "-", "_")
	return value
}

func clampScore(score int) int {
	if score < scoreMin {
		return scoreMin
	}
	if score > scoreMax {
		return scoreMax
	}
	return score
}
