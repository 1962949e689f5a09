package models

import "time"

// Todo is a task with an optional due date/time.
type Todo struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	DueDate   string    `bson:"dueDate,omitempty" json:"due_date,omitempty"` // "2006-01-02"
	DueMinute *int      `bson:"dueMinute,omitempty" json:"due_minute,omitempty"`
	Done      bool      `bson:"done" json:"done"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// TodoInput is the create/update payload for todos.
type TodoInput struct {
	Title     string `json:"title" binding:"required"`
	Notes     string `json:"notes"`
	DueDate   string `json:"due_date"`
	DueMinute *int   `json:"due_minute"`
	Done      *bool  `json:"done"`
}
