package availability

import "smartcal/config"

// ScoreWeights are the tunable inputs of the slot recommender. The exact
// numbers are configuration; behavior is validated through ordering and
// tier-membership, not exact scores.
type ScoreWeights struct {
	AvailableBonus float64 // fully-available slots over negotiable ones
	DurationFit    float64 // closeness to the requested meeting duration
	Recency        float64 // earlier dates over later ones
	BusinessHours  float64 // overlap with the preferred sub-window
}

// Settings carries the engine configuration for one request. All values are
// minutes from midnight unless stated otherwise.
type Settings struct {
	WorkStart       int // working-hours window [WorkStart, WorkEnd)
	WorkEnd         int
	MinSlotDuration int
	BusinessStart   int // preferred sub-window for scoring
	BusinessEnd     int

	DefaultRangeDays int
	MaxRangeDays     int

	Weights     ScoreWeights
	TopK        int
	ScoreCutoff float64
}

// DefaultSettings reads the engine configuration from the loaded app config.
func DefaultSettings() Settings {
	cfg := config.AppConfig
	return Settings{
		WorkStart:        cfg.WorkStartMinute,
		WorkEnd:          cfg.WorkEndMinute,
		MinSlotDuration:  cfg.MinSlotMinutes,
		BusinessStart:    cfg.BusinessStartMin,
		BusinessEnd:      cfg.BusinessEndMin,
		DefaultRangeDays: cfg.DefaultRangeDays,
		MaxRangeDays:     cfg.MaxRangeDays,
		Weights: ScoreWeights{
			AvailableBonus: cfg.ScoreAvailable,
			DurationFit:    cfg.ScoreDurationFit,
			Recency:        cfg.ScoreRecency,
			BusinessHours:  cfg.ScoreBusinessHours,
		},
		TopK:        cfg.RecommendTopK,
		ScoreCutoff: cfg.ScoreCutoff,
	}
}
