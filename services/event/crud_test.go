package event

import (
	"context"
	"errors"
	"testing"

	"smartcal/models"
)

type fakeEventRepo struct {
	events  []models.Event
	created []models.Event
	updated []models.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, ev *models.Event) error {
	f.created = append(f.created, *ev)
	f.events = append(f.events, *ev)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, userID, eventID string) (*models.Event, error) {
	for i := range f.events {
		if f.events[i].ID == eventID && f.events[i].UserID == userID {
			return &f.events[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeEventRepo) GetByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]models.Event, error) {
	var out []models.Event
	for _, ev := range f.events {
		if ev.UserID == userID && ev.Date >= startDate && ev.Date <= endDate {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetByUserAndDate(ctx context.Context, userID, date string) ([]models.Event, error) {
	return f.GetByUserAndRange(ctx, userID, date, date)
}

func (f *fakeEventRepo) Update(ctx context.Context, ev *models.Event) error {
	f.updated = append(f.updated, *ev)
	for i := range f.events {
		if f.events[i].ID == ev.ID {
			f.events[i] = *ev
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeEventRepo) Delete(ctx context.Context, userID, eventID string) error {
	for i := range f.events {
		if f.events[i].ID == eventID && f.events[i].UserID == userID {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func intPtr(v int) *int { return &v }

func TestCreateReportsConflictsButStillSaves(t *testing.T) {
	repo := &fakeEventRepo{
		events: []models.Event{
			{ID: "existing", UserID: "alice", Date: "2026-09-01", Start: intPtr(540), End: intPtr(600)},
		},
	}
	svc := NewDefaultEventService(repo, nil)

	result, err := svc.Create(context.Background(), "alice", models.EventInput{
		Title: "Standup",
		Date:  "2026-09-01",
		Start: intPtr(570),
		End:   intPtr(630),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(result.Conflicts) != 1 {
		t.Fatalf("conflicts = %v, want one overlap", result.Conflicts)
	}
	if result.Conflicts[0].Start != 540 || result.Conflicts[0].End != 600 {
		t.Errorf("conflict = %+v, want [540,600)", result.Conflicts[0])
	}
	// Advisory only: the event is persisted despite the overlap.
	if len(repo.created) != 1 {
		t.Fatalf("created %d events, want 1", len(repo.created))
	}
	if result.Event.ID == "" {
		t.Error("created event has no ID")
	}
}

func TestCreateTouchingIntervalsNoConflict(t *testing.T) {
	repo := &fakeEventRepo{
		events: []models.Event{
			{ID: "existing", UserID: "alice", Date: "2026-09-01", Start: intPtr(540), End: intPtr(600)},
		},
	}
	svc := NewDefaultEventService(repo, nil)

	result, err := svc.Create(context.Background(), "alice", models.EventInput{
		Title: "Next meeting",
		Date:  "2026-09-01",
		Start: intPtr(600),
		End:   intPtr(660),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("conflicts = %v, want none for touching intervals", result.Conflicts)
	}
}

func TestUpdateExcludesSelfFromConflictCheck(t *testing.T) {
	repo := &fakeEventRepo{
		events: []models.Event{
			{ID: "e1", UserID: "alice", Date: "2026-09-01", Start: intPtr(540), End: intPtr(600)},
		},
	}
	svc := NewDefaultEventService(repo, nil)

	result, err := svc.Update(context.Background(), "alice", "e1", models.EventInput{
		Title: "Moved",
		Date:  "2026-09-01",
		Start: intPtr(550),
		End:   intPtr(610),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("conflicts = %v, want none (only overlap is the event itself)", result.Conflicts)
	}
}

func TestConflictCheckSeesMidnightSpill(t *testing.T) {
	// An overnight event dated the day before spills busy time onto the
	// candidate's date; the lookup must reach back one day to find it.
	repo := &fakeEventRepo{
		events: []models.Event{
			{ID: "night", UserID: "alice", Date: "2026-09-01", Start: intPtr(1380), End: intPtr(1980)},
		},
	}
	svc := NewDefaultEventService(repo, nil)

	conflicts, err := svc.CheckConflicts(context.Background(), "alice", models.EventInput{
		Title: "Early run",
		Date:  "2026-09-02",
		Start: intPtr(480),
		End:   intPtr(540),
	})
	if err != nil {
		t.Fatalf("CheckConflicts: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %v, want the spilled overnight block", conflicts)
	}
	if conflicts[0].Date != "2026-09-02" || conflicts[0].Start != 0 || conflicts[0].End != 540 {
		t.Errorf("conflict = %+v, want [0,540) on 2026-09-02", conflicts[0])
	}
}

func TestCheckConflictsDoesNotPersist(t *testing.T) {
	repo := &fakeEventRepo{
		events: []models.Event{
			{ID: "existing", UserID: "alice", Date: "2026-09-01", Start: intPtr(540), End: intPtr(600)},
		},
	}
	svc := NewDefaultEventService(repo, nil)

	conflicts, err := svc.CheckConflicts(context.Background(), "alice", models.EventInput{
		Title: "Maybe",
		Date:  "2026-09-01",
		Start: intPtr(570),
		End:   intPtr(630),
	})
	if err != nil {
		t.Fatalf("CheckConflicts: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %v, want one overlap", conflicts)
	}
	if len(repo.created) != 0 {
		t.Errorf("created %d events, want none from a dry run", len(repo.created))
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewDefaultEventService(&fakeEventRepo{}, nil)

	tests := []struct {
		name string
		in   models.EventInput
	}{
		{"bad date", models.EventInput{Title: "x", Date: "someday", Start: intPtr(540)}},
		{"timed without start", models.EventInput{Title: "x", Date: "2026-09-01"}},
		{"end before start", models.EventInput{Title: "x", Date: "2026-09-01", Start: intPtr(600), End: intPtr(540)}},
		{"end date before date", models.EventInput{Title: "x", Date: "2026-09-02", EndDate: "2026-09-01", AllDay: true}},
		{"start out of range", models.EventInput{Title: "x", Date: "2026-09-01", Start: intPtr(1500)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "alice", test.in); err == nil {
				t.Errorf("Create(%+v) succeeded, want error", test.in)
			}
		})
	}
}
