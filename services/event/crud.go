package event

import (
	"context"
	"fmt"
	"time"

	"smartcal/models"
	"smartcal/services/availability"
	"smartcal/services/tasks"
	"smartcal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates and persists a new event, returning advisory conflicts
// against the owner's existing calendar.
func (s *DefaultEventService) Create(ctx context.Context, userID string, in models.EventInput) (*models.EventResult, error) {
	ev, err := buildEvent(userID, in)
	if err != nil {
		return nil, err
	}
	ev.ID = uuid.New().String()
	ev.CreatedAt = time.Now()
	ev.UpdatedAt = ev.CreatedAt

	conflicts, err := s.conflictsFor(ctx, ev, "")
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, ev); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	s.scheduleReminder(ev)

	return &models.EventResult{Event: *ev, Conflicts: conflicts}, nil
}

func (s *DefaultEventService) Get(ctx context.Context, userID, eventID string) (*models.Event, error) {
	return s.repo.GetByID(ctx, userID, eventID)
}

// ListRange returns the user's events intersecting [startDate, endDate].
func (s *DefaultEventService) ListRange(ctx context.Context, userID, startDate, endDate string) ([]models.Event, error) {
	if _, err := utils.ParseDate(startDate); err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	if _, err := utils.ParseDate(endDate); err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	return s.repo.GetByUserAndRange(ctx, userID, startDate, endDate)
}

// Update replaces the mutable fields of an existing event.
func (s *DefaultEventService) Update(ctx context.Context, userID, eventID string, in models.EventInput) (*models.EventResult, error) {
	existing, err := s.repo.GetByID(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	ev, err := buildEvent(userID, in)
	if err != nil {
		return nil, err
	}
	ev.ID = existing.ID
	ev.CreatedAt = existing.CreatedAt
	ev.UpdatedAt = time.Now()

	conflicts, err := s.conflictsFor(ctx, ev, ev.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}
	s.scheduleReminder(ev)

	return &models.EventResult{Event: *ev, Conflicts: conflicts}, nil
}

func (s *DefaultEventService) Delete(ctx context.Context, userID, eventID string) error {
	return s.repo.Delete(ctx, userID, eventID)
}

// CheckConflicts runs the advisory conflict check for a candidate event
// without persisting anything.
func (s *DefaultEventService) CheckConflicts(ctx context.Context, userID string, in models.EventInput) ([]models.BusyInterval, error) {
	ev, err := buildEvent(userID, in)
	if err != nil {
		return nil, err
	}
	return s.conflictsFor(ctx, ev, "")
}

// buildEvent validates the input payload into a persistable event.
func buildEvent(userID string, in models.EventInput) (*models.Event, error) {
	if _, err := utils.ParseDate(in.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", in.Date, err)
	}
	if in.EndDate != "" {
		end, err := utils.ParseDate(in.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", in.EndDate, err)
		}
		start, _ := utils.ParseDate(in.Date)
		if end.Before(start) {
			return nil, fmt.Errorf("end date %s before start date %s", in.EndDate, in.Date)
		}
	}
	if !in.AllDay {
		if in.Start == nil {
			return nil, fmt.Errorf("timed event requires a start minute")
		}
		if *in.Start < 0 || *in.Start >= utils.MinutesPerDay {
			return nil, fmt.Errorf("start minute %d out of range", *in.Start)
		}
		if in.End != nil && *in.End <= *in.Start && in.EndDate == "" {
			// Ends past midnight are expressed as end > 1440, not end < start.
			return nil, fmt.Errorf("end minute %d not after start %d", *in.End, *in.Start)
		}
	}

	return &models.Event{
		UserID:          userID,
		GroupID:         in.GroupID,
		Title:           in.Title,
		Notes:           in.Notes,
		Location:        in.Location,
		Date:            in.Date,
		EndDate:         in.EndDate,
		Start:           in.Start,
		End:             in.End,
		AllDay:          in.AllDay,
		ReminderMinutes: in.ReminderMinutes,
	}, nil
}

// conflictsFor normalizes the candidate event and the owner's existing
// records, then reports every stored interval that strictly overlaps the
// candidate on any covered date. excludeID skips the event being updated.
func (s *DefaultEventService) conflictsFor(ctx context.Context, candidate *models.Event, excludeID string) ([]models.BusyInterval, error) {
	endDate := candidate.Date
	if candidate.EndDate != "" {
		endDate = candidate.EndDate
	}
	// A midnight-crossing event on the previous day spills busy time onto
	// the candidate's first date, so the lookup starts one day earlier.
	queryStart := candidate.Date
	if prev, err := utils.PrevDate(candidate.Date); err == nil {
		queryStart = prev
	}
	existing, err := s.repo.GetByUserAndRange(ctx, candidate.UserID, queryStart, endDate)
	if err != nil {
		return nil, fmt.Errorf("loading calendar for conflict check: %w", err)
	}

	var others []models.Event
	for _, ev := range existing {
		if ev.ID == excludeID {
			continue
		}
		others = append(others, ev)
	}

	candByDate, _ := availability.NormalizeEvents(candidate.UserID, []models.Event{*candidate})
	existByDate, _ := availability.NormalizeEvents(candidate.UserID, others)

	var conflicts []models.BusyInterval
	for date, candIvs := range candByDate {
		for _, iv := range candIvs {
			conflicts = append(conflicts, availability.Conflicts(iv.Interval(), existByDate[date])...)
		}
	}
	return conflicts, nil
}

// scheduleReminder enqueues a delayed push for timed events that request one.
// Scheduling failures are logged, never surfaced: reminders are best effort.
func (s *DefaultEventService) scheduleReminder(ev *models.Event) {
	if s.reminder == nil || ev.ReminderMinutes <= 0 || ev.AllDay || ev.Start == nil {
		return
	}

	day, err := utils.ParseDate(ev.Date)
	if err != nil {
		return
	}
	fireAt := day.Add(time.Duration(*ev.Start-ev.ReminderMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		UserID:     ev.UserID,
		EventID:    ev.ID,
		Title:      ev.Title,
		Body:       fmt.Sprintf("Starts at %s", utils.FormatMinutes(*ev.Start)),
		FireDate:   fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("building reminder task failed", zap.String("eventId", ev.ID), zap.Error(err))
		return
	}
	if _, err := s.reminder.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("enqueueing reminder failed", zap.String("eventId", ev.ID), zap.Error(err))
	}
}
