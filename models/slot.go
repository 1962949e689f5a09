package models

// Slot classification values.
const (
	SlotAvailable  = "available"  // every group member is free
	SlotNegotiable = "negotiable" // some members free, some busy
)

// AvailableSlot is a classified free window within working hours. Start/End
// are minutes from midnight and internal; the wire carries the formatted
// HH:MM pair. For a negotiable slot AvailableMembers and ConflictingMembers
// partition the resolvable group; an available slot has no conflicting
// members.
type AvailableSlot struct {
	Date               string   `json:"date"`
	Start              int      `json:"-"`
	End                int      `json:"-"`
	StartTime          string   `json:"start_time"`
	EndTime            string   `json:"end_time"`
	Type               string   `json:"type"`
	AvailableMembers   []string `json:"available_members,omitempty"`
	ConflictingMembers []string `json:"conflicting_members,omitempty"`
}

// DurationMinutes returns the slot length in minutes.
func (s AvailableSlot) DurationMinutes() int {
	return s.End - s.Start
}

// DateRange is the resolved date window of an availability query.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GroupAvailability is the response body of an availability query. Partial
// is set when at least one member's calendar could not be fetched; those
// members are listed in UnavailableMembers and excluded from slot
// classification.
type GroupAvailability struct {
	Slots              []AvailableSlot `json:"slots"`
	DateRange          DateRange       `json:"date_range"`
	Partial            bool            `json:"partial,omitempty"`
	UnavailableMembers []string        `json:"unavailable_members,omitempty"`
}
