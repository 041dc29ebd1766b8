package tasks

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	tasksService "github.com/m04kA/SMC-AppointmentService/internal/service/tasks"
)

type TasksService interface {
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Task, error)
	Create(ctx context.Context, req *tasksService.CreateRequest) (*domain.Task, error)
	Update(ctx context.Context, id int64, update *domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
