package models

import "time"

type Exercise struct {
	ID               int64                   `json:"id"`
	Name             string                  `json:"name"`
	MuscleGroup      string                  `json:"muscle_group"`
	SecondaryMuscles []string                `json:"secondary_muscles,omitempty"`
	Equipment        string                  `json:"equipment"`
	Difficulty       string                  `json:"difficulty"`
	Recommendation   *ExerciseRecommendation `json:"recommendation,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
}

// ImpactRule declares which values of one morphological dimension help or
// hurt an exercise. Summary is the sentence fragment surfaced to the user
// when the rule matches.
type ImpactRule struct {
	Dimension   string   `json:"dimension"`
	Favorable   []string `json:"favorable,omitempty"`
	Unfavorable []string `json:"unfavorable,omitempty"`
	Summary     string   `json:"summary,omitempty"`
}

// Modification is a setup adjustment gated on the profile actually holding
// the triggering value for the dimension.
type Modification struct {
	Dimension string `json:"dimension"`
	Condition string `json:"condition"`
	Advice    string `json:"advice"`
}

// ExerciseRecommendation is curated biomechanical metadata, read-only at
// scoring time. When no curated entry exists a category default stands in.
type ExerciseRecommendation struct {
	Impacts       []ImpactRule   `json:"impacts,omitempty"`
	Modifications []Modification `json:"modifications,omitempty"`
	Cues          []string       `json:"cues,omitempty"`
}

// ExerciseScore is computed per (profile, exercise) pair and never persisted.
type ExerciseScore struct {
	Score         int      `json:"score"`
	Advantages    []string `json:"advantages"`
	Disadvantages []string `json:"disadvantages"`
	Modifications []string `json:"modifications"`
	Cues          []string `json:"cues"`
}
