package models

// Recommendation tiers.
const (
	TierBest        = "best"
	TierAlternative = "alternative"
)

// Recommendation is one ranked meeting suggestion. Score and the backing
// slot are internal; the wire exposes the formatted window, tier and a
// human-readable reason.
type Recommendation struct {
	Date               string        `json:"date"`
	StartTime          string        `json:"start_time"`
	EndTime            string        `json:"end_time"`
	Tier               string        `json:"recommendation_type"`
	Reason             string        `json:"reason"`
	ConflictingMembers []string      `json:"conflicting_members,omitempty"`
	Slot               AvailableSlot `json:"-"`
	Score              float64       `json:"-"`
}

// RecommendationSet is the response body of a recommendation query.
// Degraded is set when no fully available slot exists in the range and the
// list falls back to negotiable slots only.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	Degraded        bool             `json:"degraded,omitempty"`
	Partial         bool             `json:"partial,omitempty"`
}
