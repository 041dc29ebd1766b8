package timeslots

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория шаблонов слотов
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, update *domain.TimeSlotUpdate) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
