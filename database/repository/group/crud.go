// File: database/repository/group/crud.go
package groupRepo

import (
	"context"
	"time"

	"smartcal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoGroupRepo) Create(ctx context.Context, group *models.Group) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	group.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, group)
	return err
}

func (r *mongoGroupRepo) GetByID(ctx context.Context, groupID string) (*models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.Group
	if err := r.coll.FindOne(ctx, bson.M{"id": groupID}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *mongoGroupRepo) GetByInviteCode(ctx context.Context, code string) (*models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.Group
	if err := r.coll.FindOne(ctx, bson.M{"inviteCode": code}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *mongoGroupRepo) GetByMember(ctx context.Context, userID string) ([]models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"memberIds": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *mongoGroupRepo) AddMember(ctx context.Context, groupID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": groupID},
		bson.M{"$addToSet": bson.M{"memberIds": userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGroupRepo) RemoveMember(ctx context.Context, groupID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": groupID},
		bson.M{"$pull": bson.M{"memberIds": userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoGroupRepo) Delete(ctx context.Context, groupID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"id": groupID})
	return err
}
