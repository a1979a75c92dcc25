package repository

import (
	"context"
	"taskmint/internal/models"

	"github.com/google/uuid"
)

// TodoRepository defines the interface for todo-related database operations
type TodoRepository interface {
	// List returns all todos ordered by creation time, newest first
	List(ctx context.Context) ([]models.Todo, error)
	// Create persists a new todo with completed=false and a store-assigned id
	Create(ctx context.Context, todo *models.Todo) error
	// SetCompleted replaces the completed flag of the todo with the given id.
	// Returns ErrNotFound if no such todo exists.
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (*models.Todo, error)
	// Delete removes the todo permanently. Returns ErrNotFound if no such todo exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
