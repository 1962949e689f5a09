package models

// Venue is a place suggestion returned by the place-recommendation
// collaborator.
type Venue struct {
	PlaceID string  `json:"place_id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating,omitempty"`
}

// MeetingPlan pairs a chosen recommendation with venue suggestions.
type MeetingPlan struct {
	Slot   Recommendation `json:"slot"`
	Venues []Venue        `json:"venues,omitempty"`
}

// PlanMeetingInput selects which recommendation to plan around and where to
// look for venues.
type PlanMeetingInput struct {
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"start_time" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Keyword   string  `json:"keyword"`
}
