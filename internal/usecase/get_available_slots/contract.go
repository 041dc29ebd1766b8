package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ProviderRepository интерфейс репозитория провайдеров
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByProvider(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// SlotsCache интерфейс кэша вычисленных слотов
type SlotsCache interface {
	Get(providerID int64, date types.DateString) ([]types.TimeString, bool)
	Epoch() uint64
	Store(providerID int64, date types.DateString, slots []types.TimeString, epoch uint64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
