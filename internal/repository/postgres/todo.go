package postgres

import (
	"context"
	"database/sql"
	"taskmint/internal/models"
	"taskmint/internal/repository"
	"time"

	"github.com/google/uuid"
)

type todoRepository struct {
	repository.BaseRepository
}

// NewTodoRepository creates a new PostgreSQL todo repository
func NewTodoRepository(db *sql.DB) repository.TodoRepository {
	return &todoRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *todoRepository) List(ctx context.Context) ([]models.Todo, error) {
	query := `
		SELECT id, title, completed, created_at
		FROM todos
		ORDER BY created_at DESC`

	rows, err := r.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Completed,
			&todo.CreatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	query := `
		INSERT INTO todos (id, title, completed, created_at)
		VALUES ($1, $2, FALSE, $3)
		RETURNING id, completed, created_at`

	todo.ID = uuid.New()

	return r.DB().QueryRowContext(ctx, query,
		todo.ID,
		todo.Title,
		time.Now(),
	).Scan(&todo.ID, &todo.Completed, &todo.CreatedAt)
}

func (r *todoRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (*models.Todo, error) {
	query := `
		UPDATE todos
		SET completed = $1
		WHERE id = $2
		RETURNING id, title, completed, created_at`

	todo := &models.Todo{}
	err := r.DB().QueryRowContext(ctx, query, completed, id).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Completed,
		&todo.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM todos WHERE id = $1`

	result, err := r.DB().ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
