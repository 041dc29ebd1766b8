package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service считает дневную сводку провайдера при чтении
type Service struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	reviewRepo      ReviewRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		reviewRepo:      reviewRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Get возвращает сводку за дату; без даты берется сегодняшний день
func (s *Service) Get(ctx context.Context, providerID int64, date *types.DateString) (*domain.Analytics, error) {
	day := types.NewDateString(s.timeProvider.Now())
	if date != nil {
		if err := date.Validate(); err != nil {
			v := domain.NewValidationError()
			v.Add("date", "must be YYYY-MM-DD")
			return nil, v
		}
		day = *date
	}

	appointments, err := s.appointmentRepo.ListByProvider(ctx, domain.AppointmentsFilter{
		ProviderID: providerID,
		Date:       &day,
	})
	if err != nil {
		s.logger.Error("Get: failed to list appointments for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	result := &domain.Analytics{
		ProviderID:        providerID,
		Date:              day,
		TotalAppointments: len(appointments),
	}

	var revenue int64
	prices := make(map[int64]int64)
	for _, a := range appointments {
		switch {
		case a.IsCancelled():
			result.CancelledAppointments++
		case a.IsCompleted():
			result.CompletedAppointments++
			cents, err := s.servicePrice(ctx, a.ServiceID, prices)
			if err != nil {
				return nil, err
			}
			revenue += cents
		}
	}
	result.TotalRevenue = domain.FormatCents(revenue)

	reviews, err := s.reviewRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("Get: failed to list reviews for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	result.AverageRating = domain.AverageRating(reviews)

	return result, nil
}

// servicePrice цена услуги в копейках; удаленные и неизвестные услуги не дают выручки
func (s *Service) servicePrice(ctx context.Context, serviceID int64, prices map[int64]int64) (int64, error) {
	if cents, ok := prices[serviceID]; ok {
		return cents, nil
	}

	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			prices[serviceID] = 0
			return 0, nil
		}
		s.logger.Error("Get: failed to get service id=%d: %v", serviceID, err)
		return 0, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	cents, ok := domain.PriceCents(service.Price)
	if !ok {
		s.logger.Warn("Get: service id=%d has malformed price %q", serviceID, service.Price)
	}
	prices[serviceID] = cents
	return cents, nil
}
