package reviews

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	reviewsService "github.com/m04kA/SMC-AppointmentService/internal/service/reviews"
)

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID            int64   `json:"id"`
	AppointmentID int64   `json:"appointmentId"`
	ProviderID    int64   `json:"providerId"`
	ClientName    string  `json:"clientName"`
	Rating        int     `json:"rating"`
	Comment       *string `json:"comment"`
	CreatedAt     string  `json:"createdAt"`
}

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	AppointmentID int64   `json:"appointmentId"`
	ProviderID    int64   `json:"providerId"`
	ClientName    string  `json:"clientName"`
	Rating        int     `json:"rating"` // 1..5
	Comment       *string `json:"comment,omitempty"`
}

// RatingResponse результат пересчета рейтинга
type RatingResponse struct {
	Rating      string `json:"rating"`
	ReviewCount int    `json:"reviewCount"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateReviewRequest) ToServiceRequest() *reviewsService.CreateRequest {
	return &reviewsService.CreateRequest{
		AppointmentID: r.AppointmentID,
		ProviderID:    r.ProviderID,
		ClientName:    r.ClientName,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

// FromDomain конвертирует отзыв в HTTP модель
func FromDomain(rv *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:            rv.ID,
		AppointmentID: rv.AppointmentID,
		ProviderID:    rv.ProviderID,
		ClientName:    rv.ClientName,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		CreatedAt:     rv.CreatedAt.UTC().Format(time.RFC3339),
	}
}
