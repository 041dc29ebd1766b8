package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// Service сервис задач провайдера
type Service struct {
	taskRepo TaskRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса задач
func NewService(taskRepo TaskRepository, logger Logger) *Service {
	return &Service{taskRepo: taskRepo, logger: logger}
}

// ListByProvider возвращает задачи провайдера, новые первыми
func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}
	return tasks, nil
}

// Create создает задачу
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Task, error) {
	if err := req.validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}
	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	created, err := s.taskRepo.Create(ctx, &domain.Task{
		ProviderID:  req.ProviderID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	return created, nil
}

// Update частично обновляет задачу; переход в completed проставляет CompletedAt
func (s *Service) Update(ctx context.Context, id int64, update *domain.TaskUpdate) (*domain.Task, error) {
	if err := validateUpdate(update); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.taskRepo.Update(ctx, id, update)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}
	return updated, nil
}

// Delete удаляет задачу
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("%s: task id=%d not found", op, id)
		return ErrTaskNotFound
	}
	s.logger.Error("%s: repository error for task id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
