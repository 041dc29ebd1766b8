package memos

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	memosService "github.com/m04kA/SMC-AppointmentService/internal/service/memos"
)

type MemosService interface {
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Memo, error)
	Create(ctx context.Context, req *memosService.CreateRequest) (*domain.Memo, error)
	Update(ctx context.Context, id int64, update *domain.MemoUpdate) (*domain.Memo, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
