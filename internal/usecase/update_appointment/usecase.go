package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/events"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UseCase use case частичного обновления записи
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	locker          KeyLocker
	cache           SlotsCache
	publisher       EventPublisher
	policy          scheduling.Policy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	locker KeyLocker,
	cache SlotsCache,
	publisher EventPublisher,
	policy scheduling.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		locker:          locker,
		cache:           cache,
		publisher:       publisher,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет частичное обновление. Обновления одной записи выполняются по очереди.
// Если меняется время, дата, услуга или статус, конфликт проверяется заново
// (без учета самой записи) под блокировкой целевой даты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Блокируем запись до конца обновления, затем получаем ее текущее состояние
	unlockAppointment := uc.locker.Lock(scheduling.AppointmentLockKey(req.ID))
	defer unlockAppointment()

	current, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, uc.mapRepoError("get appointment", req.ID, err)
	}

	// 3. Строим итоговое обновление и состояние записи после него
	update, candidate, err := uc.plan(ctx, current, req)
	if err != nil {
		uc.logger.Warn("UpdateAppointment: id=%d rejected: %v", req.ID, err)
		return nil, err
	}

	var result *domain.Appointment

	// 4. Обновление без изменения расписания
	if !update.TouchesSchedule() {
		result, err = uc.appointmentRepo.Update(ctx, req.ID, update)
		if err != nil {
			return nil, uc.mapRepoError("update appointment", req.ID, err)
		}
		uc.finish(ctx, current, result)
		return &Response{Appointment: result}, nil
	}

	// 5. Критическая секция целевой даты
	unlockDate := uc.locker.Lock(scheduling.LockKey(candidate.ProviderID, candidate.AppointmentDate))
	defer unlockDate()

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем запись внутри транзакции
		fresh, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return uc.mapRepoError("reload appointment", req.ID, err)
		}
		if !sameSchedule(fresh, current) {
			uc.logger.Warn("UpdateAppointment: id=%d was modified concurrently", req.ID)
			return ErrConcurrentUpdate
		}

		// 5.2. Проверяем конфликт, если запись занимает интервал
		if uc.policy.Blocks(candidate) {
			interval, err := scheduling.NewInterval(candidate.StartTime, candidate.EndTime)
			if err != nil {
				return fieldError("endTime", "must be after startTime")
			}

			date := candidate.AppointmentDate
			appointments, err := uc.appointmentRepo.ListByProvider(txCtx, domain.AppointmentsFilter{
				ProviderID: candidate.ProviderID,
				Date:       &date,
			})
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to list appointments: %v", err)
				return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
			}

			if conflict := scheduling.FindConflict(interval, appointments, uc.policy, req.ID); conflict != nil {
				uc.logger.Warn("UpdateAppointment: id=%d %s-%s conflicts with appointment id=%d",
					req.ID, candidate.StartTime, candidate.EndTime, conflict.ID)
				return ErrSlotNotAvailable
			}
		}

		// 5.3. Сохраняем
		updated, err := uc.appointmentRepo.Update(txCtx, req.ID, update)
		if err != nil {
			return uc.mapRepoError("update appointment", req.ID, err)
		}
		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrAppointmentNotFound) ||
			errors.Is(err, ErrConcurrentUpdate) || errors.Is(err, ErrInternal) ||
			errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		uc.logger.Error("UpdateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.finish(ctx, current, result)
	return &Response{Appointment: result}, nil
}

// plan применяет запрос к копии записи, пересчитывает время окончания и проверяет услугу
func (uc *UseCase) plan(ctx context.Context, current *domain.Appointment, req *Request) (*domain.AppointmentUpdate, *domain.Appointment, error) {
	update := req.toUpdate()
	candidate := *current
	update.Apply(&candidate)

	needsEnd := update.EndTime == nil && (update.StartTime != nil || update.ServiceID != nil)

	if update.ServiceID != nil || needsEnd {
		service, err := uc.serviceRepo.GetByID(ctx, candidate.ServiceID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, nil, fieldError("serviceId", "service not found")
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%d: %v", candidate.ServiceID, err)
			return nil, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		if update.ServiceID != nil && (!service.IsActive || !service.BelongsTo(candidate.ProviderID)) {
			return nil, nil, fieldError("serviceId", "service is not offered by provider")
		}

		if needsEnd {
			end, err := candidate.StartTime.AddMinutes(service.Duration)
			if err != nil {
				return nil, nil, fieldError("startTime", "appointment must end on the same day")
			}
			update.EndTime = &end
			candidate.EndTime = end
		}
	}

	if update.TouchesSchedule() {
		if _, err := scheduling.NewInterval(candidate.StartTime, candidate.EndTime); err != nil {
			return nil, nil, fieldError("endTime", "must be after startTime")
		}
	}

	return update, &candidate, nil
}

// finish инвалидирует кэш старой и новой даты и публикует событие
func (uc *UseCase) finish(ctx context.Context, before, after *domain.Appointment) {
	if uc.cache != nil {
		uc.cache.InvalidateDate(before.ProviderID, before.AppointmentDate)
		if after.AppointmentDate != before.AppointmentDate {
			uc.cache.InvalidateDate(after.ProviderID, after.AppointmentDate)
		}
	}

	if uc.publisher != nil {
		err := uc.publisher.Publish(ctx, events.Event{
			Type:        events.AppointmentUpdated,
			Appointment: after,
			OccurredAt:  time.Now(),
		})
		if err != nil {
			uc.logger.Warn("UpdateAppointment: failed to publish event for appointment id=%d: %v", after.ID, err)
		}
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", after.ID)
}

func (uc *UseCase) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		uc.logger.Warn("UpdateAppointment: appointment id=%d not found", id)
		return ErrAppointmentNotFound
	}
	uc.logger.Error("UpdateAppointment: failed to %s id=%d: %v", op, id, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}

func sameSchedule(a, b *domain.Appointment) bool {
	return a.ServiceID == b.ServiceID &&
		a.AppointmentDate == b.AppointmentDate &&
		a.StartTime == b.StartTime &&
		a.EndTime == b.EndTime &&
		a.Status == b.Status
}
