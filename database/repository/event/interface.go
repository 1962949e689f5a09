// File: database/repository/event/interface.go
package eventRepo

import (
	"context"

	"smartcal/database"
	"smartcal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, userID, eventID string) (*models.Event, error)
	GetByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]models.Event, error)
	GetByUserAndDate(ctx context.Context, userID, date string) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, userID, eventID string) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	return &mongoEventRepo{
		coll: database.DB().Collection("events"),
	}
}
