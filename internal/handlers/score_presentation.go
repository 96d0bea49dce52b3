package handlers

// ScoreBand is the UI-facing classification of a suitability score. Cut
// points are monotonic, and both neutral baselines (the engine's 50 and the
// generator's no-profile 70) land in neutral-or-better bands: a missing
// signal must never render as a warning.
type ScoreBand struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var scoreBands = []struct {
	min  int
	band ScoreBand
}{
	{min: 80, band: ScoreBand{Label: "excellent_fit", Color: "emerald"}},
	{min: 60, band: ScoreBand{Label: "good_fit", Color: "green"}},
	{min: 45, band: ScoreBand{Label: "neutral", Color: "slate"}},
	{min: 25, band: ScoreBand{Label: "use_caution", Color: "amber"}},
	{min: 0, band: ScoreBand{Label: "poorly_suited", Color: "red"}},
}

func BandForScore(score int) ScoreBand {
	for _, entry := range scoreBands {
		if score >= entry.min {
			return entry.band
		}
	}
	return scoreBands[len(scoreBands)-1].band
}
