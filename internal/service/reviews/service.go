package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// Service сервис отзывов и рейтинга провайдеров
type Service struct {
	reviewRepo      ReviewRepository
	appointmentRepo AppointmentRepository
	providerRepo    ProviderRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	appointmentRepo AppointmentRepository,
	providerRepo ProviderRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:      reviewRepo,
		appointmentRepo: appointmentRepo,
		providerRepo:    providerRepo,
		logger:          logger,
	}
}

// ListByProvider возвращает отзывы провайдера
func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}
	return reviews, nil
}

// Create сохраняет отзыв; запись должна принадлежать провайдеру
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Review, error) {
	s.logger.Info("Create: review for appointment id=%d, provider id=%d", req.AppointmentID, req.ProviderID)

	if err := req.validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fieldError("appointmentId", "appointment not found")
		}
		s.logger.Error("Create: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if appointment.ProviderID != req.ProviderID {
		return nil, fieldError("appointmentId", "appointment does not belong to provider")
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		AppointmentID: req.AppointmentID,
		ProviderID:    req.ProviderID,
		ClientName:    req.ClientName,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	return created, nil
}

// UpdateRating пересчитывает средний рейтинг и количество отзывов и сохраняет их у провайдера
func (s *Service) UpdateRating(ctx context.Context, providerID int64) (*RatingSummary, error) {
	if _, err := s.providerRepo.GetByID(ctx, providerID); err != nil {
		return nil, s.mapProviderError(providerID, err)
	}

	reviews, err := s.reviewRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("UpdateRating: repository error for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: UpdateRating - repository error: %v", ErrInternal, err)
	}

	summary := &RatingSummary{Rating: domain.AverageRating(reviews), ReviewCount: len(reviews)}

	_, err = s.providerRepo.Update(ctx, providerID, &domain.ProviderUpdate{
		Rating:      &summary.Rating,
		ReviewCount: &summary.ReviewCount,
	})
	if err != nil {
		return nil, s.mapProviderError(providerID, err)
	}

	s.logger.Info("UpdateRating: provider id=%d rating=%s reviews=%d", providerID, summary.Rating, summary.ReviewCount)
	return summary, nil
}

func (s *Service) mapProviderError(providerID int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("UpdateRating: provider id=%d not found", providerID)
		return ErrProviderNotFound
	}
	s.logger.Error("UpdateRating: repository error for provider id=%d: %v", providerID, err)
	return fmt.Errorf("%w: UpdateRating - repository error: %v", ErrInternal, err)
}

func fieldError(field, reason string) error {
	v := domain.NewValidationError()
	v.Add(field, reason)
	return v
}
