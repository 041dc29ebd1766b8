package timeslots

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	timeslotsService "github.com/m04kA/SMC-AppointmentService/internal/service/timeslots"
)

type TimeSlotsService interface {
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.TimeSlot, error)
	Create(ctx context.Context, req *timeslotsService.CreateRequest) (*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, update *domain.TimeSlotUpdate) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
