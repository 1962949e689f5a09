// File: database/repository/event/crud.go
package eventRepo

import (
	"context"
	"time"

	"smartcal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoEventRepo) Create(ctx context.Context, event *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, event)
	return err
}

func (r *mongoEventRepo) GetByID(ctx context.Context, userID, eventID string) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.Event
	err := r.coll.FindOne(ctx, bson.M{"id": eventID, "userId": userID}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByUserAndRange fetches every event of the user that can touch the date
// range: single-day events inside the range plus multi-day events whose
// [date, endDate] span intersects it.
func (r *mongoEventRepo) GetByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"$or": []bson.M{
			{"date": bson.M{"$gte": startDate, "$lte": endDate}},
			{"endDate": bson.M{"$gte": startDate}, "date": bson.M{"$lte": endDate}},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoEventRepo) GetByUserAndDate(ctx context.Context, userID, date string) ([]models.Event, error) {
	return r.GetByUserAndRange(ctx, userID, date, date)
}

func (r *mongoEventRepo) Update(ctx context.Context, event *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	event.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": event.ID, "userId": event.UserID}, event)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventRepo) Delete(ctx context.Context, userID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": eventID, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
