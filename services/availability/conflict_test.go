package availability

import (
	"testing"

	"smartcal/models"
)

func TestConflicts(t *testing.T) {
	existing := []models.BusyInterval{
		{MemberID: "alice", Date: "2026-09-01", Start: 540, End: 600}, // 09:00-10:00
	}

	tests := []struct {
		name      string
		target    models.Interval
		conflicts int
	}{
		{name: "touching at end is not a conflict", target: models.Interval{Start: 600, End: 660}, conflicts: 0},
		{name: "touching at start is not a conflict", target: models.Interval{Start: 480, End: 540}, conflicts: 0},
		{name: "strict overlap is a conflict", target: models.Interval{Start: 570, End: 630}, conflicts: 1},
		{name: "containment is a conflict", target: models.Interval{Start: 500, End: 700}, conflicts: 1},
		{name: "contained is a conflict", target: models.Interval{Start: 550, End: 560}, conflicts: 1},
		{name: "disjoint is not a conflict", target: models.Interval{Start: 700, End: 760}, conflicts: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Conflicts(test.target, existing)
			if len(got) != test.conflicts {
				t.Errorf("Conflicts(%+v) returned %d intervals, want %d", test.target, len(got), test.conflicts)
			}
		})
	}
}

func TestConflictsReturnsOverlappingOnly(t *testing.T) {
	existing := []models.BusyInterval{
		{MemberID: "a", Date: "2026-09-01", Start: 540, End: 600},
		{MemberID: "a", Date: "2026-09-01", Start: 600, End: 660},
		{MemberID: "a", Date: "2026-09-01", Start: 720, End: 780},
	}
	got := Conflicts(models.Interval{Start: 590, End: 610}, existing)
	if len(got) != 2 {
		t.Fatalf("got %d conflicts, want 2", len(got))
	}
	if got[0].Start != 540 || got[1].Start != 600 {
		t.Errorf("conflicts = %v, want intervals starting 540 and 600", got)
	}
}
