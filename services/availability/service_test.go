package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartcal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeGroupRepo struct {
	group *models.Group
	err   error
}

func (f *fakeGroupRepo) Create(ctx context.Context, group *models.Group) error { return nil }
func (f *fakeGroupRepo) GetByID(ctx context.Context, groupID string) (*models.Group, error) {
	return f.group, f.err
}
func (f *fakeGroupRepo) GetByInviteCode(ctx context.Context, code string) (*models.Group, error) {
	return f.group, f.err
}
func (f *fakeGroupRepo) GetByMember(ctx context.Context, userID string) ([]models.Group, error) {
	return nil, nil
}
func (f *fakeGroupRepo) AddMember(ctx context.Context, groupID, userID string) error    { return nil }
func (f *fakeGroupRepo) RemoveMember(ctx context.Context, groupID, userID string) error { return nil }
func (f *fakeGroupRepo) Delete(ctx context.Context, groupID string) error               { return nil }

type fakeUserRepo struct{}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeUserRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeUserRepo) GetMembers(ctx context.Context, ids []string) ([]models.Member, error) {
	members := make([]models.Member, len(ids))
	for i, id := range ids {
		members[i] = models.Member{ID: id, DisplayName: id}
	}
	return members, nil
}
func (f *fakeUserRepo) UpsertDevice(ctx context.Context, userID string, device models.Device) error {
	return nil
}
func (f *fakeUserRepo) SetFCMToken(ctx context.Context, userID, token string) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error                 { return nil }

// fakeStore serves canned events per member, with optional per-member errors.
type fakeStore struct {
	events map[string][]models.Event
	errs   map[string]error
}

func (f *fakeStore) GetBusyEvents(ctx context.Context, memberID, startDate, endDate string) ([]models.Event, error) {
	if err := f.errs[memberID]; err != nil {
		return nil, err
	}
	return f.events[memberID], nil
}

// rangeStore filters canned events by event date the way the Mongo range
// query does, so tests see exactly what a real fetch window returns.
type rangeStore struct {
	events map[string][]models.Event
}

func (f *rangeStore) GetBusyEvents(ctx context.Context, memberID, startDate, endDate string) ([]models.Event, error) {
	var out []models.Event
	for _, ev := range f.events[memberID] {
		if ev.Date >= startDate && ev.Date <= endDate {
			out = append(out, ev)
		}
	}
	return out, nil
}

func newTestService(group *models.Group, groupErr error, store *fakeStore) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		GroupRepo: &fakeGroupRepo{group: group, err: groupErr},
		UserRepo:  &fakeUserRepo{},
		Store:     store,
		Settings:  testSettings(),
		Now:       func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) },
	}
}

func TestGetGroupAvailability(t *testing.T) {
	group := &models.Group{ID: "g1", MemberIDs: []string{"alice", "bob", "carol"}}
	store := &fakeStore{
		events: map[string][]models.Event{
			"alice": {{ID: "e1", Date: "2026-09-01", Start: intPtr(600), End: intPtr(660)}},
			"bob":   {{ID: "e2", Date: "2026-09-01", Start: intPtr(840), End: intPtr(900)}},
		},
	}
	svc := newTestService(group, nil, store)

	avail, err := svc.GetGroupAvailability(context.Background(), "g1", "2026-09-01", "2026-09-01")
	if err != nil {
		t.Fatalf("GetGroupAvailability: %v", err)
	}
	if avail.Partial {
		t.Error("Partial = true, want false")
	}
	if len(avail.Slots) != 5 {
		t.Fatalf("got %d slots, want 5: %+v", len(avail.Slots), avail.Slots)
	}
	if avail.Slots[0].StartTime != "09:00" || avail.Slots[0].Type != models.SlotAvailable {
		t.Errorf("first slot = %+v, want available from 09:00", avail.Slots[0])
	}
	if avail.Slots[1].Type != models.SlotNegotiable || avail.Slots[1].ConflictingMembers[0] != "alice" {
		t.Errorf("second slot = %+v, want negotiable conflicting [alice]", avail.Slots[1])
	}
	if avail.DateRange.Start != "2026-09-01" || avail.DateRange.End != "2026-09-01" {
		t.Errorf("date range = %+v", avail.DateRange)
	}
}

func TestGetGroupAvailabilitySeesMidnightSpill(t *testing.T) {
	// Alice has an overnight event the day before the range that runs until
	// 10:00 the next morning. A range starting on that next day must still
	// see the spilled busy time.
	group := &models.Group{ID: "g1", MemberIDs: []string{"alice", "bob"}}
	store := &rangeStore{
		events: map[string][]models.Event{
			"alice": {{ID: "night", Date: "2026-09-01", Start: intPtr(1380), End: intPtr(2040)}},
		},
	}
	svc := newTestService(group, nil, &fakeStore{})
	svc.Store = store

	avail, err := svc.GetGroupAvailability(context.Background(), "g1", "2026-09-02", "2026-09-02")
	if err != nil {
		t.Fatalf("GetGroupAvailability: %v", err)
	}
	if len(avail.Slots) != 2 {
		t.Fatalf("got %d slots, want 2: %+v", len(avail.Slots), avail.Slots)
	}
	first := avail.Slots[0]
	if first.StartTime != "09:00" || first.EndTime != "10:00" || first.Type != models.SlotNegotiable {
		t.Errorf("first slot = %+v, want negotiable 09:00-10:00", first)
	}
	if len(first.ConflictingMembers) != 1 || first.ConflictingMembers[0] != "alice" {
		t.Errorf("conflicting members = %v, want [alice]", first.ConflictingMembers)
	}
	if avail.Slots[1].StartTime != "10:00" || avail.Slots[1].Type != models.SlotAvailable {
		t.Errorf("second slot = %+v, want available from 10:00", avail.Slots[1])
	}
}

func TestGetGroupAvailabilityRequestErrors(t *testing.T) {
	tests := []struct {
		name     string
		group    *models.Group
		groupErr error
		start    string
		end      string
		wantErr  error
	}{
		{
			name:    "empty group",
			group:   &models.Group{ID: "g1"},
			start:   "2026-09-01",
			end:     "2026-09-01",
			wantErr: ErrEmptyGroup,
		},
		{
			name:     "unknown group",
			groupErr: errors.New("no documents"),
			start:    "2026-09-01",
			end:      "2026-09-01",
			wantErr:  ErrGroupNotFound,
		},
		{
			name:    "range too large",
			group:   &models.Group{ID: "g1", MemberIDs: []string{"alice"}},
			start:   "2026-09-01",
			end:     "2026-12-31",
			wantErr: ErrRangeTooLarge,
		},
		{
			name:    "end before start",
			group:   &models.Group{ID: "g1", MemberIDs: []string{"alice"}},
			start:   "2026-09-02",
			end:     "2026-09-01",
			wantErr: ErrInvalidRange,
		},
		{
			name:    "malformed date",
			group:   &models.Group{ID: "g1", MemberIDs: []string{"alice"}},
			start:   "tomorrow",
			end:     "2026-09-01",
			wantErr: ErrInvalidRange,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := newTestService(test.group, test.groupErr, &fakeStore{})
			_, err := svc.GetGroupAvailability(context.Background(), "g1", test.start, test.end)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("err = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestGetGroupAvailabilityPartial(t *testing.T) {
	group := &models.Group{ID: "g1", MemberIDs: []string{"alice", "bob"}}
	store := &fakeStore{
		errs: map[string]error{"bob": errors.New("calendar backend down")},
	}
	svc := newTestService(group, nil, store)

	avail, err := svc.GetGroupAvailability(context.Background(), "g1", "2026-09-01", "2026-09-01")
	if err != nil {
		t.Fatalf("fetch failure must degrade, not fail: %v", err)
	}
	if !avail.Partial {
		t.Error("Partial = false, want true")
	}
	if len(avail.UnavailableMembers) != 1 || avail.UnavailableMembers[0] != "bob" {
		t.Errorf("UnavailableMembers = %v, want [bob]", avail.UnavailableMembers)
	}
	// alice is free all day, so the window is one available slot for her alone.
	if len(avail.Slots) != 1 || avail.Slots[0].Type != models.SlotAvailable {
		t.Errorf("slots = %+v, want single available window", avail.Slots)
	}
}

func TestGetGroupAvailabilityDefaultRange(t *testing.T) {
	group := &models.Group{ID: "g1", MemberIDs: []string{"alice"}}
	svc := newTestService(group, nil, &fakeStore{})

	avail, err := svc.GetGroupAvailability(context.Background(), "g1", "", "")
	if err != nil {
		t.Fatalf("GetGroupAvailability: %v", err)
	}
	if avail.DateRange.Start != "2026-09-01" {
		t.Errorf("default start = %s, want today", avail.DateRange.Start)
	}
	if avail.DateRange.End != "2026-09-08" {
		t.Errorf("default end = %s, want today+%d", avail.DateRange.End, svc.Settings.DefaultRangeDays)
	}
}

func TestGetRecommendations(t *testing.T) {
	group := &models.Group{ID: "g1", MemberIDs: []string{"alice", "bob"}}
	store := &fakeStore{
		events: map[string][]models.Event{
			"alice": {{ID: "e1", Date: "2026-09-01", Start: intPtr(600), End: intPtr(660)}},
		},
	}
	svc := newTestService(group, nil, store)

	set, err := svc.GetRecommendations(context.Background(), "g1", "2026-09-01", "2026-09-01", 60)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if set.Degraded || set.Partial {
		t.Errorf("Degraded=%v Partial=%v, want false/false", set.Degraded, set.Partial)
	}
	if len(set.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}
	for _, rec := range set.Recommendations {
		if rec.Tier == models.TierBest && rec.Slot.Type != models.SlotAvailable {
			t.Errorf("best-tier recommendation %s-%s is %s", rec.StartTime, rec.EndTime, rec.Slot.Type)
		}
	}
}
