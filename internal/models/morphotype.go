package models

import "time"

// Morphotype vocabulary. Every categorical field is stored as a plain string;
// an empty string means "not answered" and is resolved to the dimension's
// neutral default at scoring time, never rejected.
const (
	GlobalTypeLongiligne = "longiligne"
	GlobalTypeBreviligne = "breviligne"
	GlobalTypeBalanced   = "balanced"

	FrameFine   = "fine"
	FrameMedium = "medium"
	FrameLarge  = "large"

	WidthNarrow = "narrow"
	WidthMedium = "medium"
	WidthWide   = "wide"

	DepthNarrow = "narrow"
	DepthMedium = "medium"
	DepthDeep   = "deep"

	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"

	ValgusNone       = "none"
	ValgusSlight     = "slight"
	ValgusPronounced = "pronounced"

	MobilityLimited = "limited"
	MobilityAverage = "average"
	MobilityGood    = "good"

	InsertionLow    = "low"
	InsertionMedium = "medium"
	InsertionHigh   = "high"

	TendencyLean      = "lean"
	TendencyBalanced  = "balanced"
	TendencyGainProne = "gain_prone"

	StrengthBelowAverage = "below_average"
	StrengthAverage      = "average"
	StrengthAboveAverage = "above_average"
)

// Dimension keys used by recommendation impact maps and the scoring engine.
const (
	DimGlobalType        = "global_type"
	DimFrameSize         = "frame_size"
	DimShoulderToHip     = "shoulder_to_hip"
	DimRibcageDepth      = "ribcage_depth"
	DimTorsoLength       = "torso_length"
	DimArmLength         = "arm_length"
	DimFemurLength       = "femur_length"
	DimKneeValgus        = "knee_valgus"
	DimAnkleDorsiflexion = "ankle_dorsiflexion"
	DimPosteriorChain    = "posterior_chain"
	DimWristMobility     = "wrist_mobility"
	DimBicepsInsertion   = "biceps_insertion"
	DimCalvesInsertion   = "calves_insertion"
	DimChestInsertion    = "chest_insertion"
	DimWeightTendency    = "weight_tendency"
	DimNaturalStrength   = "natural_strength"
)

type Structure struct {
	FrameSize     string `json:"frame_size"`
	ShoulderToHip string `json:"shoulder_to_hip"`
	RibcageDepth  string `json:"ribcage_depth"`
}

type Proportions struct {
	TorsoLength string `json:"torso_length"`
	ArmLength   string `json:"arm_length"`
	FemurLength string `json:"femur_length"`
	KneeValgus  string `json:"knee_valgus"`
}

type Mobility struct {
	AnkleDorsiflexion string `json:"ankle_dorsiflexion"`
	PosteriorChain    string `json:"posterior_chain"`
	WristMobility     string `json:"wrist_mobility"`
}

type Insertions struct {
	Biceps string `json:"biceps"`
	Calves string `json:"calves"`
	Chest  string `json:"chest"`
}

type Metabolism struct {
	WeightTendency  string   `json:"weight_tendency"`
	NaturalStrength string   `json:"natural_strength"`
	BestResponders  []string `json:"best_responders,omitempty"`
}

// LegacyMorphotype carries the older ecto/meso/endo classification. Profiles
// created before the structural questionnaire only have this block; the
// scoring boundary maps it onto structural priors once, so the engine itself
// never branches on schema version.
type LegacyMorphotype struct {
	Primary              string          `json:"primary"`
	Secondary            string          `json:"secondary,omitempty"`
	Scores               MorphotypeSplit `json:"scores"`
	Strengths            []string        `json:"strengths,omitempty"`
	Weaknesses           []string        `json:"weaknesses,omitempty"`
	RecommendedExercises []string        `json:"recommended_exercises,omitempty"`
	ExercisesToAvoid     []string        `json:"exercises_to_avoid,omitempty"`
}

type MorphotypeSplit struct {
	Ecto int `json:"ecto"`
	Meso int `json:"meso"`
	Endo int `json:"endo"`
}

// MorphotypeProfile is unique per user. Retaking the questionnaire overwrites
// the whole payload rather than merging.
type MorphotypeProfile struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	GlobalType string `json:"global_type"`

	Structure   Structure   `json:"structure"`
	Proportions Proportions `json:"proportions"`
	Mobility    Mobility    `json:"mobility"`
	Insertions  Insertions  `json:"insertions"`
	Metabolism  Metabolism  `json:"metabolism"`

	Legacy *LegacyMorphotype `json:"legacy,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DimensionDefaults is the neutral value per dimension. Scoring against a
// profile that sits entirely on these values must stay at the engine baseline.
var DimensionDefaults = map[string]string{
	DimGlobalType:        GlobalTypeBalanced,
	DimFrameSize:         FrameMedium,
	DimShoulderToHip:     WidthMedium,
	DimRibcageDepth:      DepthMedium,
	DimTorsoLength:       LengthMedium,
	DimArmLength:         LengthMedium,
	DimFemurLength:       LengthMedium,
	DimKneeValgus:        ValgusNone,
	DimAnkleDorsiflexion: MobilityAverage,
	DimPosteriorChain:    MobilityAverage,
	DimWristMobility:     MobilityAverage,
	DimBicepsInsertion:   InsertionMedium,
	DimCalvesInsertion:   InsertionMedium,
	DimChestInsertion:    InsertionMedium,
	DimWeightTendency:    TendencyBalanced,
	DimNaturalStrength:   StrengthAverage,
}

// DimensionValues flattens the structured groups into dimension→value form.
// Empty answers stay empty here; defaulting happens at the scoring boundary.
func (p *MorphotypeProfile) DimensionValues() map[string]string {
	if p == nil {
		return map[string]string{}
	}
	return map[string]string{
		DimGlobalType:        p.GlobalType,
		DimFrameSize:         p.Structure.FrameSize,
		DimShoulderToHip:     p.Structure.ShoulderToHip,
		DimRibcageDepth:      p.Structure.RibcageDepth,
		DimTorsoLength:       p.Proportions.TorsoLength,
		DimArmLength:         p.Proportions.ArmLength,
		DimFemurLength:       p.Proportions.FemurLength,
		DimKneeValgus:        p.Proportions.KneeValgus,
		DimAnkleDorsiflexion: p.Mobility.AnkleDorsiflexion,
		DimPosteriorChain:    p.Mobility.PosteriorChain,
		DimWristMobility:     p.Mobility.WristMobility,
		DimBicepsInsertion:   p.Insertions.Biceps,
		DimCalvesInsertion:   p.Insertions.Calves,
		DimChestInsertion:    p.Insertions.Chest,
		DimWeightTendency:    p.Metabolism.WeightTendency,
		DimNaturalStrength:   p.Metabolism.NaturalStrength,
	}
}
