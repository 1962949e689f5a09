package availability

import "smartcal/models"

// Conflicts returns the busy intervals in existing that strictly overlap
// target. Intervals are half-open, so a pair that only touches at an
// endpoint is not a conflict. The function is pure: no I/O, no side effects,
// deterministic for its inputs. Callers use it for advisory feedback before
// persisting an event; it never blocks a write itself.
func Conflicts(target models.Interval, existing []models.BusyInterval) []models.BusyInterval {
	var conflicts []models.BusyInterval
	for _, iv := range existing {
		if target.Overlaps(iv.Interval()) {
			conflicts = append(conflicts, iv)
		}
	}
	return conflicts
}
