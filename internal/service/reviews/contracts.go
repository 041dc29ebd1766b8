package reviews

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Review, error)
}

// AppointmentRepository интерфейс для проверки записи, к которой оставлен отзыв
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

// ProviderRepository интерфейс для сохранения рейтинга
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	Update(ctx context.Context, id int64, update *domain.ProviderUpdate) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
