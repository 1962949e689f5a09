package availability

import (
	"testing"
	"time"

	"smartcal/models"
)

func slot(date string, start, end int, slotType string, conflicting ...string) models.AvailableSlot {
	s := models.AvailableSlot{
		Date:      date,
		Start:     start,
		End:       end,
		StartTime: minutesToClock(start),
		EndTime:   minutesToClock(end),
		Type:      slotType,
	}
	if len(conflicting) > 0 {
		s.ConflictingMembers = conflicting
	}
	return s
}

func minutesToClock(m int) string {
	return time.Date(2000, 1, 1, m/60, m%60, 0, 0, time.UTC).Format("15:04")
}

var testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

// Target duration steers the top recommendation: with a 60-minute target the
// one-hour available slot must outrank the longer ones.
func TestRecommendDurationTargeting(t *testing.T) {
	slots := []models.AvailableSlot{
		slot("2026-09-01", 540, 600, models.SlotAvailable),                 // 60 min
		slot("2026-09-01", 600, 660, models.SlotNegotiable, "alice"),       // 60 min
		slot("2026-09-01", 660, 840, models.SlotAvailable),                 // 180 min
		slot("2026-09-01", 840, 900, models.SlotNegotiable, "bob"),         // 60 min
		slot("2026-09-01", 900, 1080, models.SlotAvailable),                // 180 min
	}

	set := Recommend(slots, 60, testNow, testSettings())
	if set.Degraded {
		t.Fatal("Degraded = true, want false")
	}
	if len(set.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}
	top := set.Recommendations[0]
	if top.StartTime != "09:00" || top.EndTime != "10:00" {
		t.Errorf("top recommendation = %s-%s, want 09:00-10:00", top.StartTime, top.EndTime)
	}
	if top.Tier != models.TierBest {
		t.Errorf("top tier = %s, want best", top.Tier)
	}
}

func TestRecommendBestReservedForAvailable(t *testing.T) {
	slots := []models.AvailableSlot{
		slot("2026-09-01", 540, 660, models.SlotAvailable),
		slot("2026-09-01", 660, 780, models.SlotNegotiable, "alice"),
		slot("2026-09-01", 780, 900, models.SlotNegotiable, "bob"),
		slot("2026-09-01", 900, 1020, models.SlotNegotiable, "carol"),
	}

	set := Recommend(slots, 0, testNow, testSettings())
	if set.Degraded {
		t.Fatal("Degraded = true, want false")
	}

	bests := 0
	for _, rec := range set.Recommendations {
		if rec.Tier != models.TierBest {
			continue
		}
		bests++
		if rec.Slot.Type != models.SlotAvailable {
			t.Errorf("best-tier recommendation %s-%s is %s, want available",
				rec.StartTime, rec.EndTime, rec.Slot.Type)
		}
		if len(rec.ConflictingMembers) != 0 {
			t.Errorf("best-tier recommendation carries conflicts: %v", rec.ConflictingMembers)
		}
	}
	if bests != 1 {
		t.Errorf("best-tier count = %d, want 1 (only one available slot)", bests)
	}
}

func TestRecommendDegradedWhenNoAvailable(t *testing.T) {
	slots := []models.AvailableSlot{
		slot("2026-09-01", 600, 720, models.SlotNegotiable, "alice"),
		slot("2026-09-01", 720, 840, models.SlotNegotiable, "alice", "bob"),
	}

	set := Recommend(slots, 0, testNow, testSettings())
	if !set.Degraded {
		t.Error("Degraded = false, want true")
	}
	if len(set.Recommendations) == 0 {
		t.Fatal("degraded set should still carry negotiable recommendations")
	}
	// Equal scores fall back to the earlier start.
	if set.Recommendations[0].StartTime != "10:00" {
		t.Errorf("top degraded recommendation starts %s, want 10:00", set.Recommendations[0].StartTime)
	}
	if set.Recommendations[0].Tier != models.TierBest {
		t.Errorf("degraded top tier = %s, want best (no available slots exist)", set.Recommendations[0].Tier)
	}
}

func TestRecommendEmptyInput(t *testing.T) {
	set := Recommend(nil, 0, testNow, testSettings())
	if !set.Degraded {
		t.Error("Degraded = false, want true for empty input")
	}
	if len(set.Recommendations) != 0 {
		t.Errorf("recommendations = %v, want none", set.Recommendations)
	}
}

func TestRecommendOrderingAndCap(t *testing.T) {
	var slots []models.AvailableSlot
	for day := 1; day <= 5; day++ {
		date := time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		slots = append(slots,
			slot(date, 540, 660, models.SlotAvailable),
			slot(date, 900, 1020, models.SlotNegotiable, "alice"),
		)
	}

	s := testSettings()
	set := Recommend(slots, 0, testNow, s)

	if len(set.Recommendations) > 2*s.TopK {
		t.Errorf("got %d recommendations, cap is %d", len(set.Recommendations), 2*s.TopK)
	}
	for i := 1; i < len(set.Recommendations); i++ {
		prev, cur := set.Recommendations[i-1], set.Recommendations[i]
		if cur.Score > prev.Score {
			t.Errorf("recommendations not score-ordered at %d: %.2f then %.2f", i, prev.Score, cur.Score)
		}
		if cur.Score == prev.Score && cur.Date < prev.Date {
			t.Errorf("tied scores not date-ordered at %d: %s then %s", i, prev.Date, cur.Date)
		}
	}
	// Earlier dates win among equal slots.
	if set.Recommendations[0].Date != "2026-09-01" {
		t.Errorf("top recommendation date = %s, want 2026-09-01", set.Recommendations[0].Date)
	}
	// With available slots on every day, no best-tier item may be negotiable.
	for _, rec := range set.Recommendations {
		if rec.Tier == models.TierBest && rec.Slot.Type != models.SlotAvailable {
			t.Errorf("negotiable slot %s %s-%s in best tier", rec.Date, rec.StartTime, rec.EndTime)
		}
	}
}

func TestRecommendReasons(t *testing.T) {
	slots := []models.AvailableSlot{
		slot("2026-09-01", 540, 660, models.SlotAvailable),
		slot("2026-09-01", 660, 780, models.SlotNegotiable, "alice"),
		slot("2026-09-01", 780, 900, models.SlotNegotiable, "alice", "bob"),
	}

	set := Recommend(slots, 0, testNow, testSettings())
	reasons := map[string]string{}
	for _, rec := range set.Recommendations {
		reasons[rec.StartTime] = rec.Reason
	}
	if reasons["09:00"] != "all members free" {
		t.Errorf("available reason = %q", reasons["09:00"])
	}
	if reasons["11:00"] != "1 member has a conflict" {
		t.Errorf("single-conflict reason = %q", reasons["11:00"])
	}
	if reasons["13:00"] != "2 members have conflicts" {
		t.Errorf("multi-conflict reason = %q", reasons["13:00"])
	}
}
