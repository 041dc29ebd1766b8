package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Review is a client's rating of a completed appointment
type Review struct {
	ID            int64
	AppointmentID int64
	ProviderID    int64
	ClientName    string
	Rating        int // 1..5
	Comment       *string
	CreatedAt     time.Time
}

// Analytics is a per-provider per-day summary, computed on read
type Analytics struct {
	ProviderID            int64
	Date                  types.DateString
	TotalAppointments     int
	CompletedAppointments int
	CancelledAppointments int
	TotalRevenue          string
	AverageRating         string
}

// AverageRating returns the mean rating with two fraction digits, "0.00" when there are no reviews
func AverageRating(reviews []*Review) string {
	if len(reviews) == 0 {
		return DefaultRating
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return fmt.Sprintf("%.2f", float64(sum)/float64(len(reviews)))
}
