package models

// Interval is a half-open [Start,End) minute-of-day range within a single
// date. Minutes run from 0 (midnight) to 1440 (next midnight, exclusive).
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether the two intervals strictly overlap. Intervals
// that only touch at an endpoint do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// BusyInterval pins an interval to a member and a date. For a fixed
// member+date the set is kept sorted ascending by Start and pairwise
// non-overlapping; adjacent touching intervals are merged.
type BusyInterval struct {
	MemberID string `json:"member_id"`
	Date     string `json:"date"` // "2006-01-02"
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// Interval returns the minute-of-day range of the busy interval.
func (b BusyInterval) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// DaySchedule groups normalized busy intervals per member for one date.
// It is assembled per request and never persisted.
type DaySchedule struct {
	Date      string
	PerMember map[string][]BusyInterval
}
