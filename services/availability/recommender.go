package availability

import (
	"fmt"
	"math"
	"sort"
	"time"

	"smartcal/models"
	"smartcal/utils"
)

// Recommend scores and ranks classified slots into best and alternative
// tiers. targetDuration is optional (0 means no duration preference). When
// no fully available slot exists the set degrades to the highest-scoring
// negotiable slots and the Degraded flag is set.
func Recommend(slots []models.AvailableSlot, targetDuration int, now time.Time, s Settings) models.RecommendationSet {
	set := models.RecommendationSet{Recommendations: []models.Recommendation{}}
	if len(slots) == 0 {
		set.Degraded = true
		return set
	}

	scored := make([]models.Recommendation, 0, len(slots))
	hasAvailable := false
	for _, slot := range slots {
		if slot.Type == models.SlotAvailable {
			hasAvailable = true
		}
		scored = append(scored, models.Recommendation{
			Date:               slot.Date,
			StartTime:          slot.StartTime,
			EndTime:            slot.EndTime,
			Reason:             reasonFor(slot),
			ConflictingMembers: slot.ConflictingMembers,
			Slot:               slot,
			Score:              scoreSlot(slot, targetDuration, now, s),
		})
	}
	set.Degraded = !hasAvailable

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Date != scored[j].Date {
			return scored[i].Date < scored[j].Date
		}
		return scored[i].Slot.Start < scored[j].Slot.Start
	})

	topK := s.TopK
	if topK <= 0 {
		topK = 3
	}
	for i, rec := range scored {
		if i >= 2*topK {
			break
		}
		rec.Tier = models.TierAlternative
		// Best is reserved for fully available slots whenever any exist.
		if i < topK && rec.Score >= s.ScoreCutoff &&
			(!hasAvailable || rec.Slot.Type == models.SlotAvailable) {
			rec.Tier = models.TierBest
		}
		set.Recommendations = append(set.Recommendations, rec)
	}
	return set
}

// scoreSlot combines the weighted preferences: a large bonus for fully
// available slots, closeness of duration to the target, a recency bonus for
// earlier dates, and overlap with the preferred business-hours sub-window.
func scoreSlot(slot models.AvailableSlot, targetDuration int, now time.Time, s Settings) float64 {
	score := 0.0
	if slot.Type == models.SlotAvailable {
		score += s.Weights.AvailableBonus
	}

	if targetDuration > 0 {
		dur := slot.DurationMinutes()
		longer := dur
		if targetDuration > longer {
			longer = targetDuration
		}
		fit := 1.0 - math.Abs(float64(dur-targetDuration))/float64(longer)
		score += s.Weights.DurationFit * fit
	}

	if date, err := utils.ParseDate(slot.Date); err == nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		days := date.Sub(today).Hours() / 24
		if days < 0 {
			days = 0
		}
		score += s.Weights.Recency / (1.0 + days)
	}

	if overlap := windowOverlap(slot.Start, slot.End, s.BusinessStart, s.BusinessEnd); overlap > 0 {
		score += s.Weights.BusinessHours * float64(overlap) / float64(slot.DurationMinutes())
	}

	return score
}

// windowOverlap returns the overlap in minutes between [start,end) and
// [winStart,winEnd).
func windowOverlap(start, end, winStart, winEnd int) int {
	lo := start
	if winStart > lo {
		lo = winStart
	}
	hi := end
	if winEnd < hi {
		hi = winEnd
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func reasonFor(slot models.AvailableSlot) string {
	if slot.Type == models.SlotAvailable {
		return "all members free"
	}
	n := len(slot.ConflictingMembers)
	if n == 1 {
		return "1 member has a conflict"
	}
	return fmt.Sprintf("%d members have conflicts", n)
}
