// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"smartcal/database"
	"smartcal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetMembers(ctx context.Context, ids []string) ([]models.Member, error)
	UpsertDevice(ctx context.Context, userID string, device models.Device) error
	SetFCMToken(ctx context.Context, userID, token string) error
	Delete(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}
