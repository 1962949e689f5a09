// File: database/repository/group/interface.go
package groupRepo

import (
	"context"

	"smartcal/database"
	"smartcal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, groupID string) (*models.Group, error)
	GetByInviteCode(ctx context.Context, code string) (*models.Group, error)
	GetByMember(ctx context.Context, userID string) ([]models.Group, error)
	AddMember(ctx context.Context, groupID, userID string) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	Delete(ctx context.Context, groupID string) error
}

type mongoGroupRepo struct {
	coll *mongo.Collection
}

// NewMongoGroupRepo constructs a new MongoDB GroupRepository.
func NewMongoGroupRepo() GroupRepository {
	return &mongoGroupRepo{
		coll: database.DB().Collection("groups"),
	}
}
