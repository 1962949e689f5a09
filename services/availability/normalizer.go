package availability

import (
	"sort"

	"smartcal/models"
	"smartcal/utils"

	"go.uber.org/zap"
)

const defaultEventMinutes = 60

// rawSpan is one (date, interval) candidate produced while expanding an
// event, before merging.
type rawSpan struct {
	date  string
	start int
	end   int
}

// NormalizeEvents turns one member's raw calendar events into canonical busy
// intervals keyed by date: multi-day events expanded per covered date,
// all-day events mapped to [0,1440), a missing end defaulted to start+60,
// midnight-crossing intervals split across consecutive dates, and the
// per-date sets sorted and merged. Records that are invalid after defaulting
// are dropped and logged; the returned count says how many were dropped.
func NormalizeEvents(memberID string, events []models.Event) (map[string][]models.BusyInterval, int) {
	logger := utils.GetLogger()
	spans := make(map[string][]rawSpan)
	dropped := 0

	for _, ev := range events {
		expanded, ok := expandEvent(ev)
		if !ok {
			dropped++
			logger.Warn("dropping event with invalid interval",
				zap.String("memberId", memberID),
				zap.String("eventId", ev.ID),
				zap.String("date", ev.Date))
			continue
		}
		for _, sp := range expanded {
			spans[sp.date] = append(spans[sp.date], sp)
		}
	}

	byDate := make(map[string][]models.BusyInterval, len(spans))
	for date, daySpans := range spans {
		byDate[date] = mergeSpans(memberID, date, daySpans)
	}
	return byDate, dropped
}

// expandEvent resolves an event into per-date spans. It returns false for a
// record that cannot yield a valid interval.
func expandEvent(ev models.Event) ([]rawSpan, bool) {
	if _, err := utils.ParseDate(ev.Date); err != nil {
		return nil, false
	}

	// Multi-day range: Date through EndDate inclusive.
	dates := []string{ev.Date}
	if ev.EndDate != "" && ev.EndDate != ev.Date {
		expanded, err := utils.DatesBetween(ev.Date, ev.EndDate)
		if err != nil || len(expanded) == 0 {
			return nil, false
		}
		dates = expanded
	}

	if ev.AllDay {
		spans := make([]rawSpan, 0, len(dates))
		for _, d := range dates {
			spans = append(spans, rawSpan{date: d, start: 0, end: utils.MinutesPerDay})
		}
		return spans, true
	}

	if ev.Start == nil {
		return nil, false
	}
	start := *ev.Start
	end := start + defaultEventMinutes
	if ev.End != nil {
		end = *ev.End
	}
	if start < 0 {
		start = 0
	}
	if start >= utils.MinutesPerDay {
		return nil, false
	}

	if len(dates) > 1 {
		// Timed multi-day event: partial first day, full middle days,
		// partial last day. The end minute belongs to the last day, so it
		// may legitimately be earlier than the start minute.
		lastEnd := end
		if lastEnd > utils.MinutesPerDay {
			lastEnd = utils.MinutesPerDay
		}
		if lastEnd <= 0 {
			return nil, false
		}
		spans := make([]rawSpan, 0, len(dates))
		spans = append(spans, rawSpan{date: dates[0], start: start, end: utils.MinutesPerDay})
		for _, d := range dates[1 : len(dates)-1] {
			spans = append(spans, rawSpan{date: d, start: 0, end: utils.MinutesPerDay})
		}
		spans = append(spans, rawSpan{date: dates[len(dates)-1], start: 0, end: lastEnd})
		return spans, true
	}

	if end <= start {
		return nil, false
	}

	if end > utils.MinutesPerDay {
		// Crosses midnight: clip to the date and spill the rest onto the
		// next date.
		next, err := utils.NextDate(ev.Date)
		if err != nil {
			return nil, false
		}
		return []rawSpan{
			{date: ev.Date, start: start, end: utils.MinutesPerDay},
			{date: next, start: 0, end: end - utils.MinutesPerDay},
		}, true
	}

	return []rawSpan{{date: ev.Date, start: start, end: end}}, true
}

// mergeSpans sorts a date's spans ascending by start and merges them with a
// linear sweep; spans that touch are merged as well, so the result is sorted
// and pairwise non-overlapping.
func mergeSpans(memberID, date string, spans []rawSpan) []models.BusyInterval {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start == spans[j].start {
			return spans[i].end < spans[j].end
		}
		return spans[i].start < spans[j].start
	})

	merged := make([]models.BusyInterval, 0, len(spans))
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.start <= merged[n-1].End {
			if sp.end > merged[n-1].End {
				merged[n-1].End = sp.end
			}
			continue
		}
		merged = append(merged, models.BusyInterval{
			MemberID: memberID,
			Date:     date,
			Start:    sp.start,
			End:      sp.end,
		})
	}
	return merged
}
