package event

import (
	"context"

	eventRepo "smartcal/database/repository/event"
	"smartcal/models"

	"github.com/hibiken/asynq"
)

// EventService manages a user's calendar entries. Writes run an advisory
// conflict check against the owner's existing events; the result carries the
// overlaps but the write always proceeds.
type EventService interface {
	Create(ctx context.Context, userID string, in models.EventInput) (*models.EventResult, error)
	Get(ctx context.Context, userID, eventID string) (*models.Event, error)
	ListRange(ctx context.Context, userID, startDate, endDate string) ([]models.Event, error)
	Update(ctx context.Context, userID, eventID string, in models.EventInput) (*models.EventResult, error)
	Delete(ctx context.Context, userID, eventID string) error
	CheckConflicts(ctx context.Context, userID string, in models.EventInput) ([]models.BusyInterval, error)
}

// DefaultEventService is the production implementation.
type DefaultEventService struct {
	repo     eventRepo.EventRepository
	reminder *asynq.Client // nil disables reminder scheduling
}

func NewDefaultEventService(repo eventRepo.EventRepository, reminder *asynq.Client) *DefaultEventService {
	return &DefaultEventService{repo: repo, reminder: reminder}
}
