package analytics

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// AnalyticsResponse HTTP response model
type AnalyticsResponse struct {
	ProviderID            int64  `json:"providerId"`
	Date                  string `json:"date"`
	TotalAppointments     int    `json:"totalAppointments"`
	CompletedAppointments int    `json:"completedAppointments"`
	CancelledAppointments int    `json:"cancelledAppointments"`
	TotalRevenue          string `json:"totalRevenue"`
	AverageRating         string `json:"averageRating"`
}

// FromDomain конвертирует сводку в HTTP модель
func FromDomain(a *domain.Analytics) *AnalyticsResponse {
	return &AnalyticsResponse{
		ProviderID:            a.ProviderID,
		Date:                  a.Date.String(),
		TotalAppointments:     a.TotalAppointments,
		CompletedAppointments: a.CompletedAppointments,
		CancelledAppointments: a.CancelledAppointments,
		TotalRevenue:          a.TotalRevenue,
		AverageRating:         a.AverageRating,
	}
}
