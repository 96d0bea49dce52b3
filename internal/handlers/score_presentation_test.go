package handlers

import "testing"

func TestBandForScoreThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "excellent_fit"},
		{80, "excellent_fit"},
		{79, "good_fit"},
		{60, "good_fit"},
		{59, "neutral"},
		{45, "neutral"},
		{44, "use_caution"},
		{25, "use_caution"},
		{24, "poorly_suited"},
		{0, "poorly_suited"},
	}
	for _, tt := range tests {
		if got := BandForScore(tt.score); got.Label != tt.want {
			t.Errorf("Score %d: expected band %s, got %s", tt.score, tt.want, got.Label)
		}
	}
}

func TestBandForScoreIsMonotonic(t *testing.T) {
	rank := map[string]int{
		"poorly_suited": 0,
		"use_caution":   1,
		"neutral":       2,
		"good_fit":      3,
		"excellent_fit": 4,
	}

	previous := -1
	for score := 0; score <= 100; score++ {
		current, ok := rank[BandForScore(score).Label]
		if !ok {
			t.Fatalf("Score %d: unknown band %s", score, BandForScore(score).Label)
		}
		if current < previous {
			t.Errorf("Score %d: band rank decreased from %d to %d", score, previous, current)
		}
		previous = current
	}
}

// Both neutral baselines must render as neutral or better, never as a warning.
func TestBandForScoreNeutralBaselines(t *testing.T) {
	if got := BandForScore(50); got.Label != "neutral" {
		t.Errorf("Expected score 50 to band as neutral, got %s", got.Label)
	}
	if got := BandForScore(70); got.Label != "good_fit" {
		t.Errorf("Expected score 70 to band as good_fit, got %s", got.Label)
	}
}
