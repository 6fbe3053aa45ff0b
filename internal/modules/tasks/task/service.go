package task

import (
	"context"
	"time"

	"github.com/atomtask/core/internal/models"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) GetAll(ctx context.Context) ([]models.TaskModel, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.TaskModel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, dto *CreateTaskDTO) (*models.TaskModel, error) {
	t := &models.TaskModel{
		ID:          uuid.New().String(),
		Title:       dto.Title,
		Description: dto.Description,
		Completed:   false,
		CreatedAt:   time.Now(),
	}
	return t, s.repo.Create(ctx, t)
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateTaskDTO) error {
	fields := map[string]interface{}{}
	if dto.Title != nil {
		fields["title"] = *dto.Title
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}
	if dto.Completed != nil {
		fields["completed"] = *dto.Completed
	}
	if len(fields) == 0 {
		// Nothing to write, but the caller still deserves a 404 for an
		// unknown id.
		t, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return errTaskNotFound
		}
		return nil
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) MarkCompleted(ctx context.Context, id string) error {
	return s.repo.Update(ctx, id, map[string]interface{}{"completed": true})
}
