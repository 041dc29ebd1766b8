package providers

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	providersService "github.com/m04kA/SMC-AppointmentService/internal/service/providers"
)

type ProvidersService interface {
	List(ctx context.Context, filter domain.ProvidersFilter) ([]*domain.Provider, error)
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	Register(ctx context.Context, req *providersService.RegisterRequest) (*domain.Provider, error)
	UpdateSettings(ctx context.Context, id int64, update *domain.ProviderUpdate) (*domain.Provider, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
