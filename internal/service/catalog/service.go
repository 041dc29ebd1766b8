package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// Service сервис каталога услуг провайдеров
type Service struct {
	serviceRepo  ServiceRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, providerRepo ProviderRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// ListByProvider возвращает активные услуги провайдера
func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Service, error) {
	services, err := s.serviceRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// Create создает активную услугу; провайдер должен существовать
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Service, error) {
	s.logger.Info("Create: service %q for provider id=%d", req.Name, req.ProviderID)

	if err := req.validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.providerRepo.GetByID(ctx, req.ProviderID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			v := domain.NewValidationError()
			v.Add("providerId", "provider not found")
			return nil, v
		}
		s.logger.Error("Create: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	price, _ := domain.NormalizePrice(req.Price)

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		ProviderID:  req.ProviderID,
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       price,
		IsActive:    true,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	return created, nil
}

// Update частично обновляет услугу
func (s *Service) Update(ctx context.Context, id int64, update *domain.ServiceUpdate) (*domain.Service, error) {
	if err := validateUpdate(update); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if update.Price != nil {
		price, _ := domain.NormalizePrice(*update.Price)
		update.Price = &price
	}

	updated, err := s.serviceRepo.Update(ctx, id, update)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}
	return updated, nil
}

// Delete мягкое удаление услуги
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("%s: service id=%d not found", op, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
