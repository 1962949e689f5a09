package availability

import (
	"context"
	"reflect"
	"testing"

	"smartcal/models"
)

func testSettings() Settings {
	return Settings{
		WorkStart:        540,  // 09:00
		WorkEnd:          1080, // 18:00
		MinSlotDuration:  30,
		BusinessStart:    600, // 10:00
		BusinessEnd:      960, // 16:00
		DefaultRangeDays: 7,
		MaxRangeDays:     90,
		Weights: ScoreWeights{
			AvailableBonus: 100,
			DurationFit:    30,
			Recency:        20,
			BusinessHours:  10,
		},
		TopK:        3,
		ScoreCutoff: 0,
	}
}

func busy(memberID, date string, start, end int) models.BusyInterval {
	return models.BusyInterval{MemberID: memberID, Date: date, Start: start, End: end}
}

func result(memberID string, intervals ...models.BusyInterval) MemberFetchResult {
	byDate := map[string][]models.BusyInterval{}
	for _, iv := range intervals {
		byDate[iv.Date] = append(byDate[iv.Date], iv)
	}
	return MemberFetchResult{MemberID: memberID, ByDate: byDate}
}

// Three members over one working day: alice busy 10:00-11:00, bob busy
// 14:00-15:00, carol free. The sweep should produce alternating available
// and negotiable slots covering the whole window.
func TestAggregateDayThreeMembers(t *testing.T) {
	s := testSettings()
	date := "2026-09-01"
	members := []string{"alice", "bob", "carol"}
	perMember := map[string][]models.BusyInterval{
		"alice": {busy("alice", date, 600, 660)},
		"bob":   {busy("bob", date, 840, 900)},
		"carol": nil,
	}

	slots := AggregateDay(date, members, perMember, s)

	type expect struct {
		start, end  int
		slotType    string
		conflicting []string
	}
	want := []expect{
		{540, 600, models.SlotAvailable, nil},
		{600, 660, models.SlotNegotiable, []string{"alice"}},
		{660, 840, models.SlotAvailable, nil},
		{840, 900, models.SlotNegotiable, []string{"bob"}},
		{900, 1080, models.SlotAvailable, nil},
	}

	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(slots), len(want), slots)
	}
	for i, w := range want {
		got := slots[i]
		if got.Start != w.start || got.End != w.end || got.Type != w.slotType {
			t.Errorf("slot[%d] = [%d,%d) %s, want [%d,%d) %s",
				i, got.Start, got.End, got.Type, w.start, w.end, w.slotType)
		}
		if !reflect.DeepEqual(got.ConflictingMembers, w.conflicting) {
			t.Errorf("slot[%d] conflicting = %v, want %v", i, got.ConflictingMembers, w.conflicting)
		}
		// Partition invariant: available plus conflicting covers the group
		// exactly once.
		if len(got.AvailableMembers)+len(got.ConflictingMembers) != len(members) {
			t.Errorf("slot[%d] partition covers %d members, want %d",
				i, len(got.AvailableMembers)+len(got.ConflictingMembers), len(members))
		}
	}

	// Every slot lies inside the working window and respects the minimum
	// duration.
	for i, slot := range slots {
		if slot.Start < s.WorkStart || slot.End > s.WorkEnd {
			t.Errorf("slot[%d] [%d,%d) escapes window [%d,%d)", i, slot.Start, slot.End, s.WorkStart, s.WorkEnd)
		}
		if slot.End-slot.Start < s.MinSlotDuration {
			t.Errorf("slot[%d] shorter than %d minutes", i, s.MinSlotDuration)
		}
	}
}

func TestAggregateDayAllDayMember(t *testing.T) {
	s := testSettings()
	date := "2026-09-01"
	members := []string{"alice", "bob"}
	perMember := map[string][]models.BusyInterval{
		"alice": {busy("alice", date, 0, 1440)},
		"bob":   nil,
	}

	slots := AggregateDay(date, members, perMember, s)
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1: %+v", len(slots), slots)
	}
	slot := slots[0]
	if slot.Type != models.SlotNegotiable {
		t.Errorf("slot type = %s, want negotiable", slot.Type)
	}
	if slot.Start != s.WorkStart || slot.End != s.WorkEnd {
		t.Errorf("slot = [%d,%d), want full window [%d,%d)", slot.Start, slot.End, s.WorkStart, s.WorkEnd)
	}
	if !reflect.DeepEqual(slot.ConflictingMembers, []string{"alice"}) {
		t.Errorf("conflicting = %v, want [alice]", slot.ConflictingMembers)
	}
}

func TestAggregateDayDiscardsFullyBusySegments(t *testing.T) {
	s := testSettings()
	date := "2026-09-01"
	members := []string{"alice", "bob"}
	perMember := map[string][]models.BusyInterval{
		"alice": {busy("alice", date, 600, 660)},
		"bob":   {busy("bob", date, 600, 660)},
	}

	slots := AggregateDay(date, members, perMember, s)
	for _, slot := range slots {
		if slot.Start < 660 && slot.End > 600 {
			t.Errorf("slot [%d,%d) overlaps the fully busy segment [600,660)", slot.Start, slot.End)
		}
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2 around the busy block: %+v", len(slots), slots)
	}
}

func TestAggregateDayDropsShortSlots(t *testing.T) {
	s := testSettings()
	date := "2026-09-01"
	// 20-minute free gap between two busy blocks, below the 30-minute floor.
	members := []string{"alice"}
	perMember := map[string][]models.BusyInterval{
		"alice": {busy("alice", date, 540, 700), busy("alice", date, 720, 1080)},
	}

	slots := AggregateDay(date, members, perMember, s)
	if len(slots) != 0 {
		t.Errorf("got %d slots, want 0 (gap below minimum duration): %+v", len(slots), slots)
	}
}

func TestAggregateDayClipsToWindow(t *testing.T) {
	s := testSettings()
	date := "2026-09-01"
	members := []string{"alice"}
	// Busy before and after the window has no effect.
	perMember := map[string][]models.BusyInterval{
		"alice": {busy("alice", date, 0, 540), busy("alice", date, 1080, 1440)},
	}

	slots := AggregateDay(date, members, perMember, s)
	if len(slots) != 1 || slots[0].Start != 540 || slots[0].End != 1080 || slots[0].Type != models.SlotAvailable {
		t.Errorf("slots = %+v, want single available [540,1080)", slots)
	}
}

func TestAggregateRangePartial(t *testing.T) {
	s := testSettings()
	dates := []string{"2026-09-01"}
	results := []MemberFetchResult{
		result("alice", busy("alice", "2026-09-01", 600, 660)),
		{MemberID: "bob", Err: context.DeadlineExceeded},
	}

	slots, partial, unavailable := AggregateRange(dates, results, s)
	if !partial {
		t.Error("partial = false, want true")
	}
	if !reflect.DeepEqual(unavailable, []string{"bob"}) {
		t.Errorf("unavailable = %v, want [bob]", unavailable)
	}
	// bob must not appear in any partition.
	for _, slot := range slots {
		for _, id := range append(slot.AvailableMembers, slot.ConflictingMembers...) {
			if id == "bob" {
				t.Errorf("excluded member bob appears in slot %+v", slot)
			}
		}
	}
}

func TestAggregateRangeAllFetchesFailed(t *testing.T) {
	s := testSettings()
	results := []MemberFetchResult{
		{MemberID: "alice", Err: context.DeadlineExceeded},
		{MemberID: "bob", Err: context.DeadlineExceeded},
	}

	slots, partial, unavailable := AggregateRange([]string{"2026-09-01"}, results, s)
	if len(slots) != 0 {
		t.Errorf("slots = %+v, want none", slots)
	}
	if !partial {
		t.Error("partial = false, want true")
	}
	if len(unavailable) != 2 {
		t.Errorf("unavailable = %v, want both members", unavailable)
	}
}

func TestAggregateRangeDateOrder(t *testing.T) {
	s := testSettings()
	dates := []string{"2026-09-01", "2026-09-02"}
	results := []MemberFetchResult{result("alice")}

	slots, partial, _ := AggregateRange(dates, results, s)
	if partial {
		t.Error("partial = true, want false")
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if slots[0].Date != "2026-09-01" || slots[1].Date != "2026-09-02" {
		t.Errorf("slot dates = %s, %s; want ascending", slots[0].Date, slots[1].Date)
	}
}
