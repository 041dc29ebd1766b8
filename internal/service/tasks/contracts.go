package tasks

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// TaskRepository интерфейс репозитория задач
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Task, error)
	Update(ctx context.Context, id int64, update *domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
