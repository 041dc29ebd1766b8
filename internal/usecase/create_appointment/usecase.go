package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/events"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

// UseCase use case для создания записи
type UseCase struct {
	providerRepo    ProviderRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	locker          KeyLocker
	cache           SlotsCache
	publisher       EventPublisher
	metrics         Metrics
	policy          scheduling.Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providerRepo ProviderRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	locker KeyLocker,
	cache SlotsCache,
	publisher EventPublisher,
	bookingMetrics Metrics,
	policy scheduling.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo:    providerRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		locker:          locker,
		cache:           cache,
		publisher:       publisher,
		metrics:         bookingMetrics,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи.
// Проверка конфликта и сохранение выполняются под блокировкой (провайдер, дата)
// в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: provider=%d, service=%d, date=%s, time=%s",
		req.ProviderID, req.ServiceID, req.AppointmentDate, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.observe(metrics.BookingInvalid)
		return nil, err
	}

	// 2. Получаем провайдера
	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			uc.logger.Warn("CreateAppointment: provider id=%d not found", req.ProviderID)
			uc.observe(metrics.BookingInvalid)
			return nil, fieldError("providerId", "provider not found")
		}
		uc.logger.Error("CreateAppointment: failed to get provider id=%d: %v", req.ProviderID, err)
		uc.observe(metrics.BookingFailed)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}
	if !provider.IsActive {
		uc.logger.Warn("CreateAppointment: provider id=%d is not active", req.ProviderID)
		uc.observe(metrics.BookingInvalid)
		return nil, fieldError("providerId", "provider is not active")
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			uc.observe(metrics.BookingInvalid)
			return nil, fieldError("serviceId", "service not found")
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		uc.observe(metrics.BookingFailed)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive || !service.BelongsTo(provider.ID) {
		uc.logger.Warn("CreateAppointment: service id=%d is not offered by provider id=%d", req.ServiceID, provider.ID)
		uc.observe(metrics.BookingInvalid)
		return nil, fieldError("serviceId", "service is not offered by provider")
	}

	// 4. Определяем время окончания
	endTime, err := resolveEndTime(req, service.Duration)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		uc.observe(metrics.BookingInvalid)
		return nil, err
	}

	proposed, err := scheduling.NewInterval(req.StartTime, endTime)
	if err != nil {
		uc.observe(metrics.BookingInvalid)
		return nil, fieldError("endTime", "must be after startTime")
	}

	status := domain.StatusPending
	if req.Status != nil {
		status = domain.AppointmentStatus(*req.Status)
	}

	// 5. Критическая секция: проверка конфликта и сохранение
	unlock := uc.locker.Lock(scheduling.LockKey(provider.ID, req.AppointmentDate))
	defer unlock()

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем записи провайдера на дату (в postgres - FOR UPDATE)
		date := req.AppointmentDate
		appointments, err := uc.appointmentRepo.ListByProvider(txCtx, domain.AppointmentsFilter{
			ProviderID: provider.ID,
			Date:       &date,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		// 5.2. Проверяем пересечение
		if conflict := scheduling.FindConflict(proposed, appointments, uc.policy, 0); conflict != nil {
			uc.logger.Warn("CreateAppointment: %s-%s conflicts with appointment id=%d (%s-%s)",
				req.StartTime, endTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotNotAvailable
		}

		// 5.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ProviderID:      provider.ID,
			ServiceID:       service.ID,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			AppointmentDate: req.AppointmentDate,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			Status:          status,
			Notes:           req.Notes,
			CreatedAt:       now,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.observe(metrics.BookingConflict)
			return nil, err
		}
		uc.observe(metrics.BookingFailed)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	// 6. После фиксации: кэш и событие
	if uc.cache != nil {
		uc.cache.InvalidateDate(result.ProviderID, result.AppointmentDate)
	}
	uc.observe(metrics.BookingCreated)
	uc.publish(ctx, result, now)

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{Appointment: result}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(outcome)
	}
}

// publish ошибки публикации не влияют на результат бронирования
func (uc *UseCase) publish(ctx context.Context, a *domain.Appointment, now time.Time) {
	if uc.publisher == nil {
		return
	}
	err := uc.publisher.Publish(ctx, events.Event{
		Type:        events.AppointmentCreated,
		Appointment: a,
		OccurredAt:  now,
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to publish event for appointment id=%d: %v", a.ID, err)
	}
}

func fieldError(field, reason string) error {
	v := domain.NewValidationError()
	v.Add(field, reason)
	return v
}
