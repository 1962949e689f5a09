package availability

import (
	"sort"

	"smartcal/models"
	"smartcal/utils"
)

// segment is a minimal candidate window between two consecutive boundary
// points, with the member partition that holds across it.
type segment struct {
	start int
	end   int
	free  []string
	busy  []string
}

// AggregateRange intersects the fetched calendars over the requested dates
// and returns the classified slots in date order. Members whose fetch failed
// are excluded from classification; the second return is the partial flag
// and the third lists the excluded member IDs.
func AggregateRange(dates []string, results []MemberFetchResult, s Settings) ([]models.AvailableSlot, bool, []string) {
	var resolved []MemberFetchResult
	var unavailable []string
	for _, res := range results {
		if res.Err != nil {
			unavailable = append(unavailable, res.MemberID)
			continue
		}
		resolved = append(resolved, res)
	}

	partial := len(unavailable) > 0
	if len(resolved) == 0 {
		return nil, true, unavailable
	}

	memberIDs := make([]string, len(resolved))
	for i, res := range resolved {
		memberIDs[i] = res.MemberID
	}

	var slots []models.AvailableSlot
	for _, date := range dates {
		perMember := make(map[string][]models.BusyInterval, len(resolved))
		for _, res := range resolved {
			perMember[res.MemberID] = res.ByDate[date]
		}
		slots = append(slots, AggregateDay(date, memberIDs, perMember, s)...)
	}
	return slots, partial, unavailable
}

// AggregateDay runs the boundary sweep for a single date: collect every
// interval endpoint inside the working window plus the window edges, walk
// consecutive boundary pairs, classify each minimal segment by the member
// partition, merge adjacent segments with identical classification, and drop
// anything shorter than the minimum slot duration. The sweep operates on
// boundary events only, never minute by minute.
func AggregateDay(date string, memberIDs []string, perMember map[string][]models.BusyInterval, s Settings) []models.AvailableSlot {
	boundaries := collectBoundaries(memberIDs, perMember, s)
	if len(boundaries) < 2 {
		return nil
	}

	var segments []segment
	for i := 0; i+1 < len(boundaries); i++ {
		seg := segment{start: boundaries[i], end: boundaries[i+1]}
		if seg.start >= seg.end {
			continue
		}
		for _, id := range memberIDs {
			if coveredBy(perMember[id], seg.start, seg.end) {
				seg.busy = append(seg.busy, id)
			} else {
				seg.free = append(seg.free, id)
			}
		}
		if len(seg.free) == 0 {
			// Nobody can meet here; no slot.
			continue
		}
		segments = append(segments, seg)
	}

	merged := mergeSegments(segments)

	var slots []models.AvailableSlot
	for _, seg := range merged {
		if seg.end-seg.start < s.MinSlotDuration {
			continue
		}
		slot := models.AvailableSlot{
			Date:      date,
			Start:     seg.start,
			End:       seg.end,
			StartTime: utils.FormatMinutes(seg.start),
			EndTime:   utils.FormatMinutes(seg.end),
		}
		if len(seg.busy) == 0 {
			slot.Type = models.SlotAvailable
			slot.AvailableMembers = seg.free
		} else {
			slot.Type = models.SlotNegotiable
			slot.AvailableMembers = seg.free
			slot.ConflictingMembers = seg.busy
		}
		slots = append(slots, slot)
	}
	return slots
}

// collectBoundaries gathers the working-window edges and every member
// interval endpoint clipped into the window, sorted and deduplicated.
func collectBoundaries(memberIDs []string, perMember map[string][]models.BusyInterval, s Settings) []int {
	seen := map[int]bool{s.WorkStart: true, s.WorkEnd: true}
	for _, id := range memberIDs {
		for _, iv := range perMember[id] {
			if iv.End <= s.WorkStart || iv.Start >= s.WorkEnd {
				continue
			}
			for _, b := range []int{iv.Start, iv.End} {
				if b < s.WorkStart {
					b = s.WorkStart
				}
				if b > s.WorkEnd {
					b = s.WorkEnd
				}
				seen[b] = true
			}
		}
	}

	boundaries := make([]int, 0, len(seen))
	for b := range seen {
		boundaries = append(boundaries, b)
	}
	sort.Ints(boundaries)
	return boundaries
}

// coveredBy reports whether [start,end) lies inside one of the member's
// intervals. The intervals are sorted and non-overlapping, and the segment
// never straddles an endpoint, so a linear scan suffices.
func coveredBy(intervals []models.BusyInterval, start, end int) bool {
	for _, iv := range intervals {
		if iv.Start >= end {
			return false
		}
		if iv.Start <= start && iv.End >= end {
			return true
		}
	}
	return false
}

// mergeSegments joins adjacent segments that share classification and the
// exact same member partition.
func mergeSegments(segments []segment) []segment {
	var merged []segment
	for _, seg := range segments {
		if n := len(merged); n > 0 {
			prev := &merged[n-1]
			if prev.end == seg.start && equalIDs(prev.free, seg.free) && equalIDs(prev.busy, seg.busy) {
				prev.end = seg.end
				continue
			}
		}
		merged = append(merged, seg)
	}
	return merged
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

