// File: database/repository/todo/crud.go
package todoRepo

import (
	"context"
	"time"

	"smartcal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTodoRepo) Create(ctx context.Context, todo *models.Todo) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, todo)
	return err
}

func (r *mongoTodoRepo) GetByUser(ctx context.Context, userID string, includeDone bool) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	if !includeDone {
		filter["done"] = false
	}
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}, {Key: "dueMinute", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []models.Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *mongoTodoRepo) GetByID(ctx context.Context, userID, todoID string) (*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var todo models.Todo
	if err := r.coll.FindOne(ctx, bson.M{"id": todoID, "userId": userID}).Decode(&todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *mongoTodoRepo) Update(ctx context.Context, todo *models.Todo) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	todo.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": todo.ID, "userId": todo.UserID}, todo)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTodoRepo) Delete(ctx context.Context, userID, todoID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": todoID, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
