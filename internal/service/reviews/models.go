package reviews

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// CreateRequest данные нового отзыва
type CreateRequest struct {
	AppointmentID int64
	ProviderID    int64
	ClientName    string
	Rating        int
	Comment       *string
}

// RatingSummary результат пересчета рейтинга
type RatingSummary struct {
	Rating      string // среднее, 2 знака после запятой
	ReviewCount int
}

func (r *CreateRequest) validate() error {
	v := domain.NewValidationError()

	if r.AppointmentID <= 0 {
		v.Add("appointmentId", "is required")
	}
	if r.ProviderID <= 0 {
		v.Add("providerId", "is required")
	}
	if domain.Blank(r.ClientName) {
		v.Add("clientName", "is required")
	}
	if r.Rating < domain.MinReviewRating || r.Rating > domain.MaxReviewRating {
		v.Add("rating", "must be between 1 and 5")
	}
	if r.Comment != nil && len(*r.Comment) > domain.MaxDescriptionLength {
		v.Add("comment", "is too long")
	}

	return v.OrNil()
}
