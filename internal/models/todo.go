package models

import (
	"time"

	"github.com/google/uuid"
)

// Todo represents a single task on the board
type Todo struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title" example:"buy milk"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateTodoRequest represents the request to create a new todo
type CreateTodoRequest struct {
	Title string `json:"title" binding:"required,nospaces" message:"Title is required" example:"buy milk"`
}

// UpdateTodoRequest represents the request to change a todo's completed flag
type UpdateTodoRequest struct {
	Completed *bool `json:"completed" binding:"required" example:"true"`
}
