package catalog

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, update *domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// ProviderRepository интерфейс для проверки владельца услуги
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
