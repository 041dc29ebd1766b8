package providers

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context, filter domain.ProvidersFilter) ([]*domain.Provider, error)
	Update(ctx context.Context, id int64, update *domain.ProviderUpdate) (*domain.Provider, error)
	Delete(ctx context.Context, id int64) error
}

// SlotsCache интерфейс инвалидации кэша слотов провайдера
type SlotsCache interface {
	InvalidateProvider(providerID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
