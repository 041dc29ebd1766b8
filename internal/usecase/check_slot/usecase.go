package check_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UseCase use case проверки доступности интервала
type UseCase struct {
	appointmentRepo AppointmentRepository
	policy          scheduling.Policy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, policy scheduling.Policy, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute проверяет, что [StartTime, EndTime) не пересекается с блокирующими записями
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем записи провайдера на дату
	date := req.Date
	appointments, err := uc.appointmentRepo.ListByProvider(ctx, domain.AppointmentsFilter{
		ProviderID: req.ProviderID,
		Date:       &date,
	})
	if err != nil {
		uc.logger.Error("CheckSlot: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 3. Проверяем пересечение
	available := scheduling.IsSlotAvailable(req.StartTime, req.EndTime, appointments, uc.policy)

	uc.logger.Info("CheckSlot: provider=%d, date=%s, %s-%s available=%t",
		req.ProviderID, req.Date, req.StartTime, req.EndTime, available)

	return &Response{Available: available}, nil
}
