// File: database/repository/todo/interface.go
package todoRepo

import (
	"context"

	"smartcal/database"
	"smartcal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	GetByUser(ctx context.Context, userID string, includeDone bool) ([]models.Todo, error)
	GetByID(ctx context.Context, userID, todoID string) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, userID, todoID string) error
}

type mongoTodoRepo struct {
	coll *mongo.Collection
}

// NewMongoTodoRepo constructs a new MongoDB TodoRepository.
func NewMongoTodoRepo() TodoRepository {
	return &mongoTodoRepo{
		coll: database.DB().Collection("todos"),
	}
}
