package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис чтения записей
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{appointmentRepo: appointmentRepo, logger: logger}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return appointment, nil
}

// ListByProvider возвращает записи провайдера всех статусов, опционально на одну дату
func (s *Service) ListByProvider(ctx context.Context, providerID int64, date *types.DateString) ([]*domain.Appointment, error) {
	if date != nil {
		if err := date.Validate(); err != nil {
			v := domain.NewValidationError()
			v.Add("date", "must be YYYY-MM-DD")
			return nil, v
		}
	}

	appointments, err := s.appointmentRepo.ListByProvider(ctx, domain.AppointmentsFilter{
		ProviderID: providerID,
		Date:       date,
	})
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}
	return appointments, nil
}
