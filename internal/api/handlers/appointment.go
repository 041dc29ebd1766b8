package handlers

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentResponse JSON представление записи, общее для всех ручек записей
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ProviderID      int64   `json:"providerId"`
	ServiceID       int64   `json:"serviceId"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
	CreatedAt       string  `json:"createdAt"`
}

// NewAppointmentResponse конвертирует доменную запись в HTTP модель
func NewAppointmentResponse(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		ProviderID:      a.ProviderID,
		ServiceID:       a.ServiceID,
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		ClientPhone:     a.ClientPhone,
		AppointmentDate: a.AppointmentDate.String(),
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAppointmentsResponse конвертирует список записей
func NewAppointmentsResponse(list []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, NewAppointmentResponse(a))
	}
	return result
}
