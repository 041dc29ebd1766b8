package delete_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/events"
)

// UseCase use case физического удаления записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	cache           SlotsCache
	publisher       EventPublisher
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	cache SlotsCache,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		cache:           cache,
		publisher:       publisher,
		logger:          logger,
	}
}

// Execute удаляет запись и освобождает ее интервал
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("DeleteAppointment: id=%d", req.ID)

	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	// 1. Получаем запись (нужны провайдер и дата для кэша и события)
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return uc.mapRepoError("get appointment", req.ID, err)
	}

	// 2. Удаляем
	if err := uc.appointmentRepo.Delete(ctx, req.ID); err != nil {
		return uc.mapRepoError("delete appointment", req.ID, err)
	}

	// 3. Кэш и событие
	if uc.cache != nil {
		uc.cache.InvalidateDate(appointment.ProviderID, appointment.AppointmentDate)
	}

	if uc.publisher != nil {
		err := uc.publisher.Publish(ctx, events.Event{
			Type:        events.AppointmentDeleted,
			Appointment: appointment,
			OccurredAt:  time.Now(),
		})
		if err != nil {
			uc.logger.Warn("DeleteAppointment: failed to publish event for appointment id=%d: %v", req.ID, err)
		}
	}

	uc.logger.Info("DeleteAppointment: successfully deleted appointment id=%d", req.ID)
	return nil
}

func (uc *UseCase) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		uc.logger.Warn("DeleteAppointment: appointment id=%d not found", id)
		return ErrAppointmentNotFound
	}
	uc.logger.Error("DeleteAppointment: failed to %s id=%d: %v", op, id, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
