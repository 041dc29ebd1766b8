package memos

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// Service сервис заметок провайдера
type Service struct {
	memoRepo MemoRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса заметок
func NewService(memoRepo MemoRepository, logger Logger) *Service {
	return &Service{memoRepo: memoRepo, logger: logger}
}

// ListByProvider возвращает заметки провайдера, новые первыми
func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Memo, error) {
	memos, err := s.memoRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}
	return memos, nil
}

// Create создает заметку
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Memo, error) {
	if err := req.validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	category := domain.MemoCategoryGeneral
	if req.Category != nil {
		category = domain.MemoCategory(*req.Category)
	}

	created, err := s.memoRepo.Create(ctx, &domain.Memo{
		ProviderID:  req.ProviderID,
		Title:       req.Title,
		Content:     req.Content,
		Category:    category,
		IsImportant: req.IsImportant,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	return created, nil
}

// Update частично обновляет заметку
func (s *Service) Update(ctx context.Context, id int64, update *domain.MemoUpdate) (*domain.Memo, error) {
	if err := validateUpdate(update); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.memoRepo.Update(ctx, id, update)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}
	return updated, nil
}

// Delete удаляет заметку
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.memoRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("%s: memo id=%d not found", op, id)
		return ErrMemoNotFound
	}
	s.logger.Error("%s: repository error for memo id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
