package task

import (
	"context"

	"github.com/atomtask/core/internal/models"
)

// Repository is the task-store contract.
type Repository interface {
	// GetAll returns every task, newest first.
	GetAll(ctx context.Context) ([]models.TaskModel, error)

	// GetByID returns (nil, nil) when the task does not exist.
	GetByID(ctx context.Context, id string) (*models.TaskModel, error)

	Create(ctx context.Context, t *models.TaskModel) error

	// Update applies the given fields. Returns errTaskNotFound when no
	// document matches id.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// Delete removes the task. Returns errTaskNotFound when absent.
	Delete(ctx context.Context, id string) error
}
