package handlers

import (
	"log"
	"net/http"
	"taskmint/internal/models"
	"taskmint/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TodoHandler handles todo-related requests
type TodoHandler struct {
	repo repository.TodoRepository
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(repo repository.TodoRepository) *TodoHandler {
	return &TodoHandler{repo: repo}
}

// ListTodos godoc
// @Summary List all todos
// @Description Returns all todos ordered by creation time, newest first
// @Tags todos
// @Accept json
// @Produce json
// @Success 200 {array} models.Todo
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch todos: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch todos"})
		return
	}

	// Empty list marshals as [] rather than null
	if todos == nil {
		todos = []models.Todo{}
	}

	c.JSON(http.StatusOK, todos)
}

// CreateTodo godoc
// @Summary Create a new todo
// @Description Creates a new todo with completed=false
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body models.CreateTodoRequest true "Todo to create"
// @Success 201 {object} models.Todo
// @Failure 400 {object} models.ErrorResponse "Title is required"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Title is required"})
		return
	}

	todo := models.Todo{Title: req.Title}
	if err := h.repo.Create(c.Request.Context(), &todo); err != nil {
		log.Printf("Failed to create todo: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo godoc
// @Summary Set a todo's completed flag
// @Description Replaces the completed flag of an existing todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param todo body models.UpdateTodoRequest true "New completed value"
// @Success 200 {object} models.Todo
// @Failure 400 {object} models.ErrorResponse "Invalid request body or todo ID"
// @Failure 404 {object} models.ErrorResponse "Todo not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /todos/{id} [put]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid todo ID"})
		return
	}

	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	todo, err := h.repo.SetCompleted(c.Request.Context(), id, *req.Completed)
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Todo not found"})
		return
	} else if err != nil {
		log.Printf("Failed to update todo %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo godoc
// @Summary Delete a todo
// @Description Deletes an existing todo permanently
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Success 204 "No Content"
// @Failure 400 {object} models.ErrorResponse "Invalid todo ID"
// @Failure 404 {object} models.ErrorResponse "Todo not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid todo ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Todo not found"})
		return
	} else if err != nil {
		log.Printf("Failed to delete todo %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete todo"})
		return
	}

	c.Status(http.StatusNoContent)
}
