package timeslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// Service сервис шаблонов еженедельных слотов
type Service struct {
	timeSlotRepo TimeSlotRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(timeSlotRepo TimeSlotRepository, logger Logger) *Service {
	return &Service{timeSlotRepo: timeSlotRepo, logger: logger}
}

// ListByProvider возвращает доступные шаблоны провайдера
func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]*domain.TimeSlot, error) {
	slots, err := s.timeSlotRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}
	return slots, nil
}

// Create создает шаблон слота
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.TimeSlot, error) {
	if err := req.validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	created, err := s.timeSlotRepo.Create(ctx, &domain.TimeSlot{
		ProviderID:  req.ProviderID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: isAvailable,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	return created, nil
}

// Update частично обновляет шаблон; итоговый интервал проверяется целиком
func (s *Service) Update(ctx context.Context, id int64, update *domain.TimeSlotUpdate) (*domain.TimeSlot, error) {
	current, err := s.timeSlotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	merged := *current
	update.Apply(&merged)

	v := domain.NewValidationError()
	validateSlot(merged.DayOfWeek, merged.StartTime, merged.EndTime, v)
	if err := v.OrNil(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.timeSlotRepo.Update(ctx, id, update)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}
	return updated, nil
}

// Delete мягкое удаление шаблона
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.timeSlotRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("%s: time slot id=%d not found", op, id)
		return ErrTimeSlotNotFound
	}
	s.logger.Error("%s: repository error for time slot id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
