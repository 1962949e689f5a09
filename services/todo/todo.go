package todo

import (
	"context"
	"fmt"
	"time"

	todoRepo "smartcal/database/repository/todo"
	"smartcal/models"
	"smartcal/utils"

	"github.com/google/uuid"
)

// TodoService manages a user's task list.
type TodoService interface {
	Create(ctx context.Context, userID string, in models.TodoInput) (*models.Todo, error)
	List(ctx context.Context, userID string, includeDone bool) ([]models.Todo, error)
	Update(ctx context.Context, userID, todoID string, in models.TodoInput) (*models.Todo, error)
	Delete(ctx context.Context, userID, todoID string) error
}

// DefaultTodoService is the production implementation.
type DefaultTodoService struct {
	repo todoRepo.TodoRepository
}

func NewDefaultTodoService(repo todoRepo.TodoRepository) *DefaultTodoService {
	return &DefaultTodoService{repo: repo}
}

func (s *DefaultTodoService) Create(ctx context.Context, userID string, in models.TodoInput) (*models.Todo, error) {
	if err := validateDue(in); err != nil {
		return nil, err
	}

	now := time.Now()
	todo := &models.Todo{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     in.Title,
		Notes:     in.Notes,
		DueDate:   in.DueDate,
		DueMinute: in.DueMinute,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Done != nil {
		todo.Done = *in.Done
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}
	return todo, nil
}

func (s *DefaultTodoService) List(ctx context.Context, userID string, includeDone bool) ([]models.Todo, error) {
	return s.repo.GetByUser(ctx, userID, includeDone)
}

func (s *DefaultTodoService) Update(ctx context.Context, userID, todoID string, in models.TodoInput) (*models.Todo, error) {
	existing, err := s.repo.GetByID(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}
	if err := validateDue(in); err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Notes = in.Notes
	existing.DueDate = in.DueDate
	existing.DueMinute = in.DueMinute
	if in.Done != nil {
		existing.Done = *in.Done
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating todo: %w", err)
	}
	return existing, nil
}

func (s *DefaultTodoService) Delete(ctx context.Context, userID, todoID string) error {
	return s.repo.Delete(ctx, userID, todoID)
}

func validateDue(in models.TodoInput) error {
	if in.DueDate != "" {
		if _, err := utils.ParseDate(in.DueDate); err != nil {
			return fmt.Errorf("invalid due date %q: %w", in.DueDate, err)
		}
	}
	if in.DueMinute != nil {
		if in.DueDate == "" {
			return fmt.Errorf("due minute requires a due date")
		}
		if *in.DueMinute < 0 || *in.DueMinute >= utils.MinutesPerDay {
			return fmt.Errorf("due minute %d out of range", *in.DueMinute)
		}
	}
	return nil
}
