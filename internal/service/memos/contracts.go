package memos

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// MemoRepository интерфейс репозитория заметок
type MemoRepository interface {
	Create(ctx context.Context, memo *domain.Memo) (*domain.Memo, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Memo, error)
	Update(ctx context.Context, id int64, update *domain.MemoUpdate) (*domain.Memo, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
