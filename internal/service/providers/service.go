package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// Service сервис для работы с провайдерами
type Service struct {
	providerRepo ProviderRepository
	cache        SlotsCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса провайдеров; cache может быть nil
func NewService(providerRepo ProviderRepository, cache SlotsCache, logger Logger) *Service {
	return &Service{
		providerRepo: providerRepo,
		cache:        cache,
		logger:       logger,
	}
}

// List возвращает активных провайдеров с опциональным поиском
func (s *Service) List(ctx context.Context, filter domain.ProvidersFilter) ([]*domain.Provider, error) {
	providers, err := s.providerRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return providers, nil
}

// GetByID получает провайдера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return provider, nil
}

// Register регистрирует провайдера с рабочими часами по умолчанию
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.Provider, error) {
	s.logger.Info("Register: email=%s", req.Email)

	if err := req.validate(); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	workingHours := req.WorkingHours
	if workingHours == nil {
		workingHours = domain.DefaultWorkingHours()
	}

	created, err := s.providerRepo.Create(ctx, &domain.Provider{
		Name:         strings.TrimSpace(req.Name),
		Title:        req.Title,
		Specialty:    req.Specialty,
		Email:        strings.TrimSpace(req.Email),
		Phone:        req.Phone,
		Bio:          req.Bio,
		Rating:       domain.DefaultRating,
		IsActive:     true,
		WorkingHours: workingHours,
		SocialLinks:  req.SocialLinks,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			s.logger.Warn("Register: email %s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created provider id=%d", created.ID)
	return created, nil
}

// UpdateSettings частично обновляет профиль, рабочие часы и ссылки
func (s *Service) UpdateSettings(ctx context.Context, id int64, update *domain.ProviderUpdate) (*domain.Provider, error) {
	s.logger.Info("UpdateSettings: provider id=%d", id)

	if err := validateUpdate(update); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.providerRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, s.mapError("UpdateSettings", id, err)
	}

	s.invalidate(id)
	return updated, nil
}

// SetRating сохраняет рассчитанный рейтинг; используется сервисом отзывов
func (s *Service) SetRating(ctx context.Context, id int64, rating string, reviewCount int) (*domain.Provider, error) {
	updated, err := s.providerRepo.Update(ctx, id, &domain.ProviderUpdate{
		Rating:      &rating,
		ReviewCount: &reviewCount,
	})
	if err != nil {
		return nil, s.mapError("SetRating", id, err)
	}
	return updated, nil
}

// Delete мягкое удаление провайдера
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: provider id=%d", id)

	if err := s.providerRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}

	s.invalidate(id)
	return nil
}

func (s *Service) invalidate(id int64) {
	if s.cache != nil {
		s.cache.InvalidateProvider(id)
	}
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("%s: provider id=%d not found", op, id)
		return ErrProviderNotFound
	}
	s.logger.Error("%s: repository error for provider id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
