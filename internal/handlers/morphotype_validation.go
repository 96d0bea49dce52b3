package handlers

import (
	"fmt"
	"strings"

	"github.com/adrien-rx/MorphoFitBack/internal/models"
	"github.com/adrien-rx/MorphoFitBack/internal/services"
)

// Questionnaire answers are optional (missing values default to neutral at
// scoring time) but a provided value must belong to its vocabulary.

var allowedGlobalTypes = []string{models.GlobalTypeLongiligne, models.GlobalTypeBreviligne, models.GlobalTypeBalanced}
var allowedFrameSizes = []string{models.FrameFine, models.FrameMedium, models.FrameLarge}
var allowedWidths = []string{models.WidthNarrow, models.WidthMedium, models.WidthWide}
var allowedDepths = []string{models.DepthNarrow, models.DepthMedium, models.DepthDeep}
var allowedLengths = []string{models.LengthShort, models.LengthMedium, models.LengthLong}
var allowedValgus = []string{models.ValgusNone, models.ValgusSlight, models.ValgusPronounced}
var allowedMobility = []string{models.MobilityLimited, models.MobilityAverage, models.MobilityGood}
var allowedInsertions = []string{models.InsertionLow, models.InsertionMedium, models.InsertionHigh}
var allowedTendencies = []string{models.TendencyLean, models.TendencyBalanced, models.TendencyGainProne}
var allowedStrengths = []string{models.StrengthBelowAverage, models.StrengthAverage, models.StrengthAboveAverage}

var allowedGoals = []string{
	models.GoalStrength, models.GoalHypertrophy, models.GoalMetabolic,
	models.GoalPowerbuilding, models.GoalAthletic, models.GoalRecomposition,
}
var allowedApproaches = []string{
	models.ApproachLeverageStrengths, models.ApproachFixWeaknesses, models.ApproachBalanced,
}
var allowedSplits = []string{
	models.SplitFullBody, models.SplitPushPullLegs, models.SplitUpperLower, models.SplitBroSplit,
}

func validateMorphotypeRequest(req morphotypeRequest) string {
	checks := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"global_type", req.GlobalType, allowedGlobalTypes},
		{"structure.frame_size", req.Structure.FrameSize, allowedFrameSizes},
		{"structure.shoulder_to_hip", req.Structure.ShoulderToHip, allowedWidths},
		{"structure.ribcage_depth", req.Structure.RibcageDepth, allowedDepths},
		{"proportions.torso_length", req.Proportions.TorsoLength, allowedLengths},
		{"proportions.arm_length", req.Proportions.ArmLength, allowedLengths},
		{"proportions.femur_length", req.Proportions.FemurLength, allowedLengths},
		{"proportions.knee_valgus", req.Proportions.KneeValgus, allowedValgus},
		{"mobility.ankle_dorsiflexion", req.Mobility.AnkleDorsiflexion, allowedMobility},
		{"mobility.posterior_chain", req.Mobility.PosteriorChain, allowedMobility},
		{"mobility.wrist_mobility", req.Mobility.WristMobility, allowedMobility},
		{"insertions.biceps", req.Insertions.Biceps, allowedInsertions},
		{"insertions.calves", req.Insertions.Calves, allowedInsertions},
		{"insertions.chest", req.Insertions.Chest, allowedInsertions},
		{"metabolism.weight_tendency", req.Metabolism.WeightTendency, allowedTendencies},
		{"metabolism.natural_strength", req.Metabolism.NaturalStrength, allowedStrengths},
	}

	for _, check := range checks {
		if msg := validateOptionalEnum(check.field, check.value, check.allowed); msg != "" {
			return msg
		}
	}

	for _, responder := range req.Metabolism.BestResponders {
		if strings.TrimSpace(responder) == "" {
			return "metabolism.best_responders must not contain empty values"
		}
	}

	return ""
}

func validateProgramConfig(config models.ProgramConfig) string {
	if msg := validateRequiredEnum("goal", config.Goal, allowedGoals); msg != "" {
		return msg
	}
	if msg := validateRequiredEnum("approach", config.Approach, allowedApproaches); msg != "" {
		return msg
	}
	if msg := validateRequiredEnum("split", config.Split, allowedSplits); msg != "" {
		return msg
	}
	if config.DaysPerWeek < 1 || config.DaysPerWeek > 7 {
		return "days_per_week must be between 1 and 7"
	}
	if minimum := services.SplitMinimumDays[config.Split]; config.DaysPerWeek < minimum {
		return fmt.Sprintf("%s requires at least %d days per week", config.Split, minimum)
	}
	return ""
}

func validateOptionalEnum(field, value string, allowed []string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return validateRequiredEnum(field, value, allowed)
}

func validateRequiredEnum(field, value string, allowed []string) string {
	for _, candidate := range allowed {
		if value == candidate {
			return ""
		}
	}
	return fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}
