package services

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

type CatalogService interface {
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Service, error)
	Create(ctx context.Context, req *catalog.CreateRequest) (*domain.Service, error)
	Update(ctx context.Context, id int64, update *domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
