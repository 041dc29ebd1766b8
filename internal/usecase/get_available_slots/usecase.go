package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UseCase use case для получения свободных слотов провайдера на дату
type UseCase struct {
	providerRepo    ProviderRepository
	appointmentRepo AppointmentRepository
	cache           SlotsCache
	policy          scheduling.Policy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case; cache может быть nil
func NewUseCase(
	providerRepo ProviderRepository,
	appointmentRepo AppointmentRepository,
	cache SlotsCache,
	policy scheduling.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo:    providerRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Несуществующий или неактивный провайдер дает пустой список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s", req.ProviderID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Пробуем кэш
	var epoch uint64
	if uc.cache != nil {
		if slots, ok := uc.cache.Get(req.ProviderID, req.Date); ok {
			return &Response{ProviderID: req.ProviderID, Date: req.Date, Slots: slots, FromCache: true}, nil
		}
		epoch = uc.cache.Epoch()
	}

	// 3. Получаем провайдера
	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get provider id=%d: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
		}
		uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
		provider = nil
	}

	// 4. Получаем записи на дату (все статусы, фильтрует политика)
	date := req.Date
	appointments, err := uc.appointmentRepo.ListByProvider(ctx, domain.AppointmentsFilter{
		ProviderID: req.ProviderID,
		Date:       &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 5. Вычисляем слоты
	slots := scheduling.AvailableSlots(provider, req.Date, appointments, uc.policy)

	if uc.cache != nil {
		uc.cache.Store(req.ProviderID, req.Date, slots, epoch)
	}

	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s, %d slots available", req.ProviderID, req.Date, len(slots))

	return &Response{ProviderID: req.ProviderID, Date: req.Date, Slots: slots}, nil
}
