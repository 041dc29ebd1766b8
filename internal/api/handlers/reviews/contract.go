package reviews

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	reviewsService "github.com/m04kA/SMC-AppointmentService/internal/service/reviews"
)

type ReviewsService interface {
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Review, error)
	Create(ctx context.Context, req *reviewsService.CreateRequest) (*domain.Review, error)
	UpdateRating(ctx context.Context, providerID int64) (*reviewsService.RatingSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
